package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/config"
	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/middleware"
	"github.com/uthybuilds/Homespired-sub000/routes/cms_routes"
	"github.com/uthybuilds/Homespired-sub000/routes/storefront_routes"
	"github.com/uthybuilds/Homespired-sub000/services"
	"github.com/uthybuilds/Homespired-sub000/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Optional infrastructure: either can be absent and the data layer
	// degrades to local-only operation.
	config.InitDB()
	config.ConnectRedis()

	bus := events.New(config.RedisClient)

	// Backend selection happens exactly once, here.
	var backend store.Backend
	if config.SyncEnabled() {
		remote := store.NewRemoteBackend(config.SyncGorm)
		// Changes announced by other devices drop this process's stale
		// snapshot; our own publishes skip these, so a refresh never races
		// the save's own replication.
		bus.SubscribeRemote(events.TopicCartChanged, func() {
			remote.Refresh(store.KeyCart, store.KeyCartMeta)
		})
		bus.SubscribeRemote(events.TopicSettingsChanged, func() {
			remote.Refresh(store.KeySettings)
		})
		bus.SubscribeRemote(events.TopicRequestsChanged, func() {
			remote.Refresh(store.KeyRequests)
		})
		bus.SubscribeRemote(events.TopicStorageChanged, func() {
			remote.Refresh(store.KeyCatalog, store.KeyOrders, store.KeyDiscounts,
				store.KeyCustomers, store.KeyAnalytics)
		})
		backend = remote
		log.Println("✅ Using networked backend")
	} else {
		local, err := store.NewLocalBackend(config.DataDir())
		if err != nil {
			log.Fatalf("Failed to initialize local backend: %v", err)
		}
		backend = local
		log.Println("✅ Using local backend")
	}
	stores := store.New(backend, bus)
	counter := services.NewCounterService(config.SyncPool, backend)
	checkout := services.NewCheckoutService(stores, counter)

	// Upload collaborator (payment proofs, product images).
	var uploader *services.CloudinaryService
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudName != "" {
		var err error
		uploader, err = services.NewCloudinaryService(cloudName,
			os.Getenv("CLOUDINARY_API_KEY"), os.Getenv("CLOUDINARY_API_SECRET"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  Cloudinary not configured, uploads disabled")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	notifier := services.NewResendClient()

	app.Init(backend, bus, stores, counter, checkout, uploader, notifier)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://homespired.shop"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	cms_routes.SetupAdminRoutes(api)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	adminGroup.Use(middleware.AdminAuthMiddleware())
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	cms_routes.SetupDiscountRoutes(adminGroup)
	cms_routes.SetupSettingsRoutes(adminGroup)
	cms_routes.SetupRequestRoutes(adminGroup)
	cms_routes.SetupCustomerRoutes(adminGroup)
	cms_routes.SetupAnalyticsRoutes(adminGroup)

	// Public storefront (no rate limiter). The identity middleware only
	// tags an admin token when one is present; anonymous requests pass.
	storefront := api.Group("")
	storefront.Use(middleware.AdminIdentityMiddleware())
	storefront_routes.SetupStorefrontRoutes(storefront)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}

package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/controllers/cms/analytics_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/cms/customer_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/cms/discount_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/cms/request_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/cms/settings_controller"
)

func SetupDiscountRoutes(rg *gin.RouterGroup) {
	discounts := rg.Group("/discounts")
	{
		discounts.GET("", discount_controller.GetDiscounts)
		discounts.POST("", discount_controller.CreateDiscount)
		discounts.PATCH("/:code/toggle", discount_controller.ToggleDiscount)
		discounts.DELETE("/:code", discount_controller.DeleteDiscount)
	}
}

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", settings_controller.GetSettings)
		settings.PUT("", settings_controller.UpdateSettings)
	}
}

func SetupRequestRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.GET("", request_controller.GetRequests)
		requests.PATCH("/:id/status", request_controller.UpdateRequestStatus)
	}
}

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", customer_controller.GetCustomers)
}

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", analytics_controller.GetAnalytics)
}

package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/controllers/storefront/cart_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/storefront/catalog_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/storefront/checkout_controller"
	"github.com/uthybuilds/Homespired-sub000/controllers/storefront/request_controller"
)

// SetupStorefrontRoutes registers the public customer-facing endpoints.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", catalog_controller.GetProducts)
	rg.GET("/settings", catalog_controller.GetSettings)
	rg.POST("/beacon/view", catalog_controller.RecordStoreView)
	rg.GET("/discounts/validate", catalog_controller.ValidateDiscount)

	cart := rg.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items/:productId", cart_controller.AddToCart)
		cart.PATCH("/items/:productId", cart_controller.UpdateQuantity)
		cart.DELETE("/items/:productId", cart_controller.RemoveFromCart)
		cart.DELETE("", cart_controller.ClearCart)
	}

	rg.POST("/checkout", checkout_controller.Checkout)
	rg.POST("/requests", request_controller.SubmitRequest)
}

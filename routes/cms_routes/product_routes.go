package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/controllers/cms/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.POST("", product_controller.CreateProduct)
		products.PATCH("/:id", product_controller.UpdateProduct)
		products.DELETE("/:id", product_controller.DeleteProduct)
		products.GET("/low-stock", product_controller.GetLowStock)
	}
}

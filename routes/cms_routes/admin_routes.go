package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/controllers/cms/auth_controller"
)

// SetupAdminRoutes registers the unauthenticated admin auth endpoints.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/admin/auth")
	{
		auth.POST("/login", auth_controller.AdminLogin)
		auth.POST("/logout", auth_controller.AdminLogout)
	}
}

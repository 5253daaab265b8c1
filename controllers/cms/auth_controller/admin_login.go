package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates the administrator and sets the admin token cookie.
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	token, err := services.GetAdminAuthService().Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	// 7 days, matching the token lifetime
	c.SetCookie("admin_token", token, 7*24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", gin.H{"token": token}))
}

// AdminLogout clears the admin token cookie.
func AdminLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
)

func GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics retrieved", app.Stores.Analytics.Snapshot()))
}

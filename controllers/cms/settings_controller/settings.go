package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

func GetSettings(c *gin.Context) {
	settings, err := app.Stores.Settings.Get()
	if err != nil {
		log.Printf("[settings.get] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load settings"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved", settings))
}

// UpdateSettings replaces the whole singleton; the admin form always submits
// the full record.
func UpdateSettings(c *gin.Context) {
	var settings models.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	done := app.Stores.Settings.Update(settings)
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Settings saved locally but cloud sync failed",
			Data:    settings,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated", settings))
}

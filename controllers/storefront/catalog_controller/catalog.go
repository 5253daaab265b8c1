package catalog_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/services"
)

// GetProducts returns the public catalog.
func GetProducts(c *gin.Context) {
	products, err := app.Stores.Catalog.Products()
	if err != nil {
		log.Printf("[storefront.catalog] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", products))
}

// GetSettings exposes the public slice of the settings singleton: service
// options, shipping zones and bank details for the transfer instructions.
func GetSettings(c *gin.Context) {
	settings, err := app.Stores.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load settings"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved", settings))
}

// RecordStoreView is the page-view beacon.
func RecordStoreView(c *gin.Context) {
	app.Stores.Analytics.IncrStoreViews()
	c.Status(http.StatusNoContent)
}

// ValidateDiscount answers the "is this code worth anything" question during
// checkout. Distinguishes a code that does not exist from one that exists
// but does not apply, because the storefront shows those differently.
func ValidateDiscount(c *gin.Context) {
	code := c.Query("code")
	subtotal, _ := strconv.ParseFloat(c.Query("subtotal"), 64)

	discounts, err := app.Stores.Discounts.Discounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load discounts"))
		return
	}

	result := services.EvaluateDiscount(code, subtotal, discounts, time.Now().UTC())
	switch result.Status {
	case services.DiscountNotFound:
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Discount code not found"))
	case services.DiscountNotApplicable:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount exists but does not apply", gin.H{
			"applicable": false,
			"code":       result.Code,
			"amount":     0,
		}))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount applied", gin.H{
			"applicable": true,
			"code":       result.Code,
			"amount":     result.Amount,
		}))
	}
}

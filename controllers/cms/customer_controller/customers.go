package customer_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
)

func GetCustomers(c *gin.Context) {
	customers, err := app.Stores.Customers.Customers()
	if err != nil {
		log.Printf("[admin.customer.list] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load customers"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers retrieved", customers))
}

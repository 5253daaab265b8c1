package discount_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

func GetDiscounts(c *gin.Context) {
	discounts, err := app.Stores.Discounts.Discounts()
	if err != nil {
		log.Printf("[discount.list] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load discounts"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discounts retrieved", discounts))
}

func CreateDiscount(c *gin.Context) {
	var req models.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	discount, done, err := app.Stores.Discounts.Create(req)
	if err != nil {
		if errors.Is(err, store.ErrDiscountExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A discount with this code already exists"))
			return
		}
		log.Printf("[discount.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create discount"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Discount saved locally but cloud sync failed",
			Data:    discount,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Discount created", discount))
}

func ToggleDiscount(c *gin.Context) {
	discount, done, err := app.Stores.Discounts.Toggle(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrDiscountNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Discount not found"))
			return
		}
		log.Printf("[discount.toggle] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle discount"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Discount saved locally but cloud sync failed",
			Data:    discount,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount toggled", discount))
}

func DeleteDiscount(c *gin.Context) {
	done, err := app.Stores.Discounts.Delete(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrDiscountNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Discount not found"))
			return
		}
		log.Printf("[discount.delete] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete discount"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Discount removed locally but cloud sync failed",
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount deleted", nil))
}

package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/services"
	"github.com/uthybuilds/Homespired-sub000/store"
)

// GetOrders returns all orders, newest first.
func GetOrders(c *gin.Context) {
	orders, err := app.Stores.Orders.Orders()
	if err != nil {
		log.Printf("[admin.order.list] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load orders"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved", orders))
}

func GetOrderByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	order, err := app.Stores.Orders.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.get] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", order))
}

// UpdateOrderStatus moves an order through its lifecycle. Cancelling restocks
// the order's line snapshot exactly once; cancelling an already-cancelled
// order is a no-op.
func UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	order, done, err := app.Checkout.UpdateOrderStatus(id, models.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.update] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Order saved locally but cloud sync failed",
			Data:    order,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}

// DownloadOrderInvoicePDF generates and streams the invoice for an order.
func DownloadOrderInvoicePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	order, err := app.Stores.Orders.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}

	pdfBuffer, err := services.GenerateOrderInvoicePDF(&order)
	if err != nil {
		log.Printf("[admin.order.invoice] render failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

package checkout_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/config"
	"github.com/uthybuilds/Homespired-sub000/middleware"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/services"
)

// Checkout turns the cart into an order. Multipart form: contact fields,
// optional zone/discount, and the bank-transfer proof image. The proof
// upload is awaited and fatal; everything after it follows the
// fire-and-forget write contract.
func Checkout(c *gin.Context) {
	in := services.CheckoutInput{
		Customer: models.CustomerSnapshot{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Phone:   c.PostForm("phone"),
			Address: c.PostForm("address"),
			City:    c.PostForm("city"),
			State:   c.PostForm("state"),
		},
		ZoneID:       c.PostForm("zone_id"),
		DiscountCode: c.PostForm("discount_code"),
		IsAdmin:      middleware.IsAdmin(c),
	}

	proofURL, ok := uploadProof(c)
	if !ok {
		return
	}
	in.ProofURL = proofURL

	ctx, cancel := config.WithTimeout()
	defer cancel()
	order, err := app.Checkout.PlaceOrder(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrMissingContact),
			errors.Is(err, services.ErrProofRequired),
			errors.Is(err, services.ErrNoShippingZone),
			errors.Is(err, services.ErrUnknownZone):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[checkout] failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Checkout failed"))
		}
		return
	}

	notifyOrder(order)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed", order))
}

// uploadProof pushes the payment-proof file to the upload collaborator. A
// missing or failed upload aborts the checkout before any state changes.
func uploadProof(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Payment proof is required"))
		return "", false
	}
	if app.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Proof uploads are not configured"))
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read proof file"))
		return "", false
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	url, err := app.Uploader.UploadImage(ctx, file, "", "homespired/proofs")
	if err != nil {
		log.Printf("[checkout] proof upload failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Proof upload failed, please try again"))
		return "", false
	}
	return url, true
}

// notifyOrder emails the studio about the new order. Failure is recoverable:
// the order already exists, the admin just finds out from the dashboard
// instead.
func notifyOrder(order models.Order) {
	if app.Notifier == nil {
		return
	}
	lines := []services.NotificationLine{
		{Label: "Order", Value: order.OrderNumber},
		{Label: "Customer", Value: order.Customer.Name},
		{Label: "Email", Value: order.Customer.Email},
		{Label: "Phone", Value: order.Customer.Phone},
		{Label: "Zone", Value: order.ZoneLabel},
		{Label: "Subtotal", Value: fmt.Sprintf("NGN %.2f", order.Subtotal)},
		{Label: "Shipping", Value: fmt.Sprintf("NGN %.2f", order.ShippingCost)},
		{Label: "Discount", Value: fmt.Sprintf("NGN %.2f", order.DiscountAmount)},
		{Label: "Total", Value: fmt.Sprintf("NGN %.2f", order.Total)},
		{Label: "Proof", Value: order.ProofURL},
	}
	if err := app.Notifier.SendNotification("New Order", lines); err != nil {
		log.Printf("[checkout] order notification failed for %s: %v", order.OrderNumber, err)
	}
}

package request_controller

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

// SubmitRequest books an inspection, consultation or class. Multipart form
// like checkout; the proof file is only required for options that are not
// redirect-only.
func SubmitRequest(c *gin.Context) {
	in := services.RequestInput{
		Type:     models.RequestType(c.PostForm("type")),
		OptionID: c.PostForm("option_id"),
		Customer: models.CustomerSnapshot{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Phone:   c.PostForm("phone"),
			Address: c.PostForm("address"),
			City:    c.PostForm("city"),
			State:   c.PostForm("state"),
		},
		Notes:   c.PostForm("notes"),
		IsAdmin: middleware.IsAdmin(c),
	}

	// Proof is optional at the transport level; the service enforces it for
	// non-redirect options.
	if fileHeader, err := c.FormFile("proof"); err == nil {
		if app.Uploader == nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Proof uploads are not configured"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read proof file"))
			return
		}
		defer file.Close()

		ctx, cancel := config.WithTimeout()
		defer cancel()
		url, err := app.Uploader.UploadImage(ctx, file, "", "homespired/proofs")
		if err != nil {
			log.Printf("[request.submit] proof upload failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Proof upload failed, please try again"))
			return
		}
		in.ProofURL = url
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	request, redirect, err := app.Checkout.SubmitRequest(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReqType),
			errors.Is(err, services.ErrMissingContact),
			errors.Is(err, services.ErrUnknownOption),
			errors.Is(err, services.ErrProofRequired):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[request.submit] failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Request submission failed"))
		}
		return
	}

	notifyRequest(request)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Request submitted", gin.H{
		"request":  request,
		"redirect": redirect,
	}))
}

func notifyRequest(request models.ServiceRequest) {
	if app.Notifier == nil {
		return
	}
	lines := []services.NotificationLine{
		{Label: "Request", Value: request.RequestNumber},
		{Label: "Type", Value: string(request.Type)},
		{Label: "Option", Value: request.OptionLabel},
		{Label: "Price", Value: fmt.Sprintf("NGN %.2f", request.Price)},
		{Label: "Customer", Value: request.Customer.Name},
		{Label: "Email", Value: request.Customer.Email},
		{Label: "Phone", Value: request.Customer.Phone},
		{Label: "Notes", Value: request.Notes},
	}
	if err := app.Notifier.SendNotification("New Service Request", lines); err != nil {
		log.Printf("[request.submit] notification failed for %s: %v", request.RequestNumber, err)
	}
}

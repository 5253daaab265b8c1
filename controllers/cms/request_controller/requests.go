package request_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

func GetRequests(c *gin.Context) {
	requests, err := app.Stores.Requests.Requests()
	if err != nil {
		log.Printf("[admin.request.list] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load requests"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Requests retrieved", requests))
}

func UpdateRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request ID"))
		return
	}

	var req models.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	request, done, err := app.Stores.Requests.SetStatus(id, models.RequestStatus(req.Status))
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Request not found"))
			return
		}
		log.Printf("[admin.request.update] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update request"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Request saved locally but cloud sync failed",
			Data:    request,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Request status updated", request))
}

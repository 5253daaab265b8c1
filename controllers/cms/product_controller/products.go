package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/config"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

// GetProducts returns the full catalog for the admin dashboard.
func GetProducts(c *gin.Context) {
	products, err := app.Stores.Catalog.Products()
	if err != nil {
		log.Printf("[product.list] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", products))
}

// CreateProduct creates a catalog entry. The image arrives either as a
// ready-made URL field or as a multipart file uploaded through Cloudinary.
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if url, ok := uploadImageIfPresent(c); ok {
		req.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	product, done, err := app.Stores.Catalog.Create(req)
	if err != nil {
		log.Printf("[product.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	// Admin edits wait on replication so a failed remote save is visible.
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Product saved locally but cloud sync failed",
			Data:    product,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}

// UpdateProduct applies a partial edit.
func UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product, done, err := app.Stores.Catalog.Update(id, req)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.update] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Product saved locally but cloud sync failed",
			Data:    product,
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product))
}

// DeleteProduct removes a catalog entry. Existing orders keep their
// snapshots, so nothing else is touched.
func DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	done, err := app.Stores.Catalog.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.delete] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if err := store.Wait(done); err != nil {
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "Product removed locally but cloud sync failed",
			Error:   true,
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}

// GetLowStock lists tracked products at or below the alert threshold.
func GetLowStock(c *gin.Context) {
	settings, err := app.Stores.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load settings"))
		return
	}
	low, err := app.Stores.Catalog.LowStock(settings.LowInventoryThreshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Low stock products", low))
}

// uploadImageIfPresent pushes a multipart "image" file to Cloudinary. Returns
// ok=false without aborting when no file was attached; aborts with an error
// response when an attached file cannot be uploaded.
func uploadImageIfPresent(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", false
	}
	if app.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		c.Abort()
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image file"))
		c.Abort()
		return "", false
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	url, err := app.Uploader.UploadImage(ctx, file, "", "homespired/products")
	if err != nil {
		log.Printf("[product.upload] image upload failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Image upload failed"))
		c.Abort()
		return "", false
	}
	return url, true
}

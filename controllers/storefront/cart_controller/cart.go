package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/app"
	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

// GetCart returns the cart plus the abandonment signal for the UI nudge.
func GetCart(c *gin.Context) {
	items, err := app.Stores.Cart.Items()
	if err != nil {
		log.Printf("[cart.get] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}
	abandoned, _ := app.Stores.Cart.Abandoned(time.Now().UTC())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved", gin.H{
		"items":     items,
		"abandoned": abandoned,
	}))
}

// AddToCart adds one unit of a product. Exceeding tracked inventory is not
// an error: the cart simply comes back unchanged, matching the silent
// rejection the storefront expects.
func AddToCart(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, err := app.Stores.Catalog.Get(productID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load product"))
		return
	}

	added, err := app.Stores.Cart.Add(product)
	if err != nil {
		log.Printf("[cart.add] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	items, _ := app.Stores.Cart.Items()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", gin.H{
		"added": added,
		"items": items,
	}))
}

// UpdateQuantity clamps the requested quantity to current stock; zero or
// below removes the line.
func UpdateQuantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity is required"))
		return
	}

	inventory := 0
	if product, err := app.Stores.Catalog.Get(productID); err == nil {
		inventory = product.Inventory
	}

	if err := app.Stores.Cart.UpdateQuantity(productID, req.Quantity, inventory); err != nil {
		log.Printf("[cart.quantity] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	items, _ := app.Stores.Cart.Items()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", gin.H{"items": items}))
}

func RemoveFromCart(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	if err := app.Stores.Cart.Remove(productID); err != nil {
		log.Printf("[cart.remove] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	items, _ := app.Stores.Cart.Items()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", gin.H{"items": items}))
}

func ClearCart(c *gin.Context) {
	if err := app.Stores.Cart.Clear(); err != nil {
		log.Printf("[cart.clear] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", nil))
}

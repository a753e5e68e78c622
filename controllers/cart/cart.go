package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity"`
}

// POST /cart/items
// Adding a product the user already carries increments the existing row in a
// single ON CONFLICT upsert, so concurrent adds cannot produce duplicates.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "error": err.Error()})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding item to cart", "error": err.Error()})
			}
			return
		}

		item := models.CartItem{
			UserID:    user.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", input.Quantity),
			}),
		}).Create(&item).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding item to cart", "error": err.Error()})
			return
		}

		var saved models.CartItem
		if err := db.Preload("Product").
			First(&saved, "user_id = ? AND product_id = ?", user.ID, input.ProductID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding item to cart", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Item added to cart successfully",
			"cartItem": saved,
		})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving cart", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Cart retrieved successfully",
			"cartItems": items,
		})
	}
}

// PUT /cart/items/:itemId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil || *input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive integer"})
			return
		}

		var item models.CartItem
		if err := db.First(&item, "id = ? AND user_id = ?", c.Param("itemId"), user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating cart item", "error": err.Error()})
			}
			return
		}

		item.Quantity = *input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating cart item", "error": err.Error()})
			return
		}

		var updated models.CartItem
		if err := db.Preload("Product").First(&updated, "id = ?", item.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating cart item", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Cart item updated successfully",
			"cartItem": updated,
		})
	}
}

// DELETE /cart/items/:itemId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("itemId"), user.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing item from cart", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
	}
}

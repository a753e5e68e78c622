package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/yapzhanrui2/E-Commerce-Website/controllers/cart"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(db))
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/items", cartControllers.AddToCart(db))
		cartGroup.PUT("/items/:itemId", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/items/:itemId", cartControllers.RemoveFromCart(db))
	}
}

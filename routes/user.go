package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/yapzhanrui2/E-Commerce-Website/controllers/user"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
)

// SetupUserRoutes registers all "/users/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/users")
	userGroup.Use(middleware.ValidateToken(db))
	{
		userGroup.GET("/profile", userControllers.GetProfile())
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))
	}
}

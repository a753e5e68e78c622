package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authControllers "github.com/yapzhanrui2/E-Commerce-Website/controllers/auth"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints. Register and login are
// public but rate limited; the rest require a valid token.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimiter(redisClient))
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/me", middleware.ValidateToken(db), authControllers.Me())
		authGroup.POST("/logout", middleware.ValidateToken(db), authControllers.Logout())
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/payments"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, provider payments.Provider, redisClient *redis.Client, logger *zap.Logger) {
	SetupAuthRoutes(r, db, redisClient)
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupReviewRoutes(r, db)
	SetupOrderRoutes(r, db, provider, logger)
	SetupAdminRoutes(r, db)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/yapzhanrui2/E-Commerce-Website/controllers/review"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
)

// SetupReviewRoutes registers all "/reviews/*" endpoints. Reading a product's
// reviews is public; writing one requires a token.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", middleware.ValidateToken(db), reviewControllers.CreateReview(db))
		reviews.GET("/:productId", reviewControllers.GetProductReviews(db))
	}
}

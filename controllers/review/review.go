package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

type CreateReviewInput struct {
	ProductID string `json:"productId"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
}

// reviewer is the public-safe slice of the review author.
type reviewer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type reviewResponse struct {
	models.Review
	User reviewer `json:"user"`
}

// POST /reviews
// One review per (user, product); the unique index rejects a second attempt
// even under concurrent submissions.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "error": err.Error()})
			return
		}

		fieldErrs := make(map[string]string)
		if input.ProductID == "" {
			fieldErrs["productId"] = "Product ID is required"
		}
		if input.Rating == nil {
			fieldErrs["rating"] = "Rating is required"
		} else if *input.Rating < 1 || *input.Rating > 5 {
			fieldErrs["rating"] = "Rating must be an integer between 1 and 5"
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": fieldErrs})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating review", "error": err.Error()})
			}
			return
		}

		review := models.Review{
			UserID:    user.ID,
			ProductID: input.ProductID,
			Rating:    *input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "You have already reviewed this product"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating review", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Review created successfully",
			"review":  review,
		})
	}
}

// GET /reviews/:productId
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving reviews", "error": err.Error()})
			}
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving reviews", "error": err.Error()})
			return
		}

		var sum int
		responses := make([]reviewResponse, 0, len(reviews))
		for _, r := range reviews {
			sum += r.Rating
			responses = append(responses, reviewResponse{
				Review: r,
				User:   reviewer{ID: r.User.ID, Username: r.User.Username},
			})
		}

		averageRating := 0.0
		if len(reviews) > 0 {
			averageRating = float64(sum) / float64(len(reviews))
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Reviews retrieved successfully",
			"averageRating": averageRating,
			"totalReviews":  len(reviews),
			"reviews":       responses,
		})
	}
}

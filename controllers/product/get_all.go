package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

// GetProducts returns the catalog, optionally narrowed by an exact category
// containment match and a case-insensitive substring search on the name.
// Query params: category, search. No pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")

		query := db.Model(&models.Product{})

		if category != "" {
			// Categories are stored as a JSON array; a whole-element match
			// is the quoted string inside the serialized text.
			query = query.Where("categories LIKE ?", `%"`+category+`"%`)
		}
		if search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Products retrieved successfully",
			"products": products,
		})
	}
}

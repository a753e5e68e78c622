package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
}

// validate returns field-level error messages, keyed by field name.
func (in *ProductInput) validate() map[string]string {
	errs := make(map[string]string)
	if in.Name == "" {
		errs["name"] = "Name is required"
	}
	if in.Price == nil {
		errs["price"] = "Price is required"
	} else if *in.Price < 0 {
		errs["price"] = "Price must be a positive number"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateProduct adds a catalog entry. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "error": err.Error()})
			return
		}

		if errs := input.validate(); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Image:       input.Image,
			Categories:  input.Categories,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": product,
		})
	}
}

package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving users", "error": err.Error()})
			return
		}

		public := make([]models.PublicUser, 0, len(users))
		for i := range users {
			public = append(public, users[i].Public())
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Users retrieved successfully",
			"users":   public,
		})
	}
}

// PUT /admin/users/:userId/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateRoleInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.ValidRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role specified"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user role", "error": err.Error()})
			}
			return
		}

		user.Role = models.Role(input.Role)
		if err := db.Model(&user).Update("role", user.Role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user role", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User role updated successfully",
			"user":    user.Public(),
		})
	}
}

// DELETE /admin/users/:userId
// Admins cannot delete their own account.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := middleware.CurrentUser(c)

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user", "error": err.Error()})
			}
			return
		}

		if user.ID == caller.ID {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete your own admin account"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

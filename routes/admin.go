package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/yapzhanrui2/E-Commerce-Website/controllers/admin"
	productcontroller "github.com/yapzhanrui2/E-Commerce-Website/controllers/product"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT plus the
// admin role gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(db), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/users", adminController.GetAllUsers(db))
		adminGroup.PUT("/users/:userId/role", adminController.UpdateUserRole(db))
		adminGroup.DELETE("/users/:userId", adminController.DeleteUser(db))

		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderControllers "github.com/yapzhanrui2/E-Commerce-Website/controllers/order"
	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
	"github.com/yapzhanrui2/E-Commerce-Website/payments"
)

// SetupOrderRoutes registers all "/orders/*" endpoints. The webhook stays
// outside the auth middleware: it is authenticated by its signature, not by
// a bearer token, and needs the raw request body.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, provider payments.Provider, logger *zap.Logger) {
	orders := r.Group("/orders")
	{
		orders.POST("/webhook", orderControllers.HandleWebhook(db, provider, logger))

		authed := orders.Group("")
		authed.Use(middleware.ValidateToken(db))
		{
			authed.POST("/checkout", orderControllers.CreateCheckoutSession(db, provider))
			authed.GET("/my-orders", orderControllers.GetUserOrders(db))
			authed.GET("/my-orders/:orderId", orderControllers.GetOrderDetails(db))

			admin := authed.Group("")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/all", orderControllers.GetAllOrders(db))
				admin.PUT("/:orderId/status", orderControllers.UpdateOrderStatus(db))
				admin.GET("/ws", orderControllers.OrderFeedHandler)
			}
		}
	}
}

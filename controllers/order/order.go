package orderControllers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
	"github.com/yapzhanrui2/E-Commerce-Website/payments"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders/checkout
//
// Takes a snapshot of the caller's cart, asks the payment provider for a
// hosted checkout page, then persists the pending Order and its items in one
// transaction. The cart is cleared only when the webhook confirms payment.
func CreateCheckoutSession(db *gorm.DB, provider payments.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var cartItems []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating checkout session", "error": err.Error()})
			return
		}
		if len(cartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			return
		}

		var totalAmount float64
		lineItems := make([]payments.LineItem, 0, len(cartItems))
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			totalAmount += item.Product.Price * float64(item.Quantity)
			lineItems = append(lineItems, payments.LineItem{
				Name:       item.Product.Name,
				Image:      item.Product.Image,
				UnitAmount: int64(math.Round(item.Product.Price * 100)),
				Quantity:   int64(item.Quantity),
			})
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				PriceAtTime: item.Product.Price,
			})
		}

		session, err := provider.CreateCheckoutSession(user.ID, user.Email, lineItems)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating checkout session", "error": err.Error()})
			return
		}

		order := models.Order{
			UserID:          user.ID,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			TotalAmount:     totalAmount,
			StripeSessionID: session.ID,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for i := range orderItems {
				orderItems[i].OrderID = order.ID
			}
			return tx.Omit(clause.Associations).Create(&orderItems).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating checkout session", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Checkout session created",
			"sessionId":  session.ID,
			"sessionUrl": session.URL,
		})
	}
}

// POST /orders/webhook
//
// Signature verification happens before any business logic; an unverifiable
// payload never touches the database. A completed-checkout event for an
// unknown session id is acknowledged without action, which makes replays and
// late deliveries harmless.
func HandleWebhook(db *gorm.DB, provider payments.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error reading webhook payload"})
			return
		}

		event, err := provider.ConstructWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			logger.Warn("webhook signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Webhook Error: " + err.Error()})
			return
		}

		if event.Type == "checkout.session.completed" {
			var session stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
				logger.Error("webhook payload decode failed", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"message": "Webhook Error: malformed event payload"})
				return
			}

			var order models.Order
			err := db.First(&order, "stripe_session_id = ?", session.ID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// No matching order: acknowledged no-op.
			case err != nil:
				logger.Error("webhook order lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing webhook", "error": err.Error()})
				return
			default:
				order.Status = models.OrderStatusProcessing
				order.PaymentStatus = models.PaymentStatusPaid
				if session.PaymentIntent != nil {
					order.PaymentIntentID = &session.PaymentIntent.ID
				}
				order.ShippingAddress = shippingAddressFromSession(&session)

				err := db.Transaction(func(tx *gorm.DB) error {
					if err := tx.Save(&order).Error; err != nil {
						return err
					}
					return tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error
				})
				if err != nil {
					logger.Error("webhook order update failed", zap.String("order_id", order.ID), zap.Error(err))
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing webhook", "error": err.Error()})
					return
				}

				logger.Info("order paid",
					zap.String("order_id", order.ID),
					zap.String("session_id", session.ID),
				)
				broadcastOrderUpdate(order)
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func shippingAddressFromSession(session *stripe.CheckoutSession) models.ShippingAddress {
	addr := models.ShippingAddress{}
	if session.ShippingDetails == nil {
		return addr
	}
	addr.Name = session.ShippingDetails.Name
	if a := session.ShippingDetails.Address; a != nil {
		addr.Line1 = a.Line1
		addr.Line2 = a.Line2
		addr.City = a.City
		addr.State = a.State
		addr.PostalCode = a.PostalCode
		addr.Country = a.Country
	}
	return addr
}

// GET /orders/my-orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving orders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Orders retrieved successfully",
			"orders":  orders,
		})
	}
}

// GET /orders/my-orders/:orderId
// A foreign order and a missing order answer the same 404, so order ids
// cannot be probed across accounts.
func GetOrderDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			First(&order, "id = ? AND user_id = ?", c.Param("orderId"), user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving order details", "error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order retrieved successfully",
			"order":   order,
		})
	}
}

// GET /orders/all (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving all orders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "All orders retrieved successfully",
			"orders":  orders,
		})
	}
}

// PUT /orders/:orderId/status (admin)
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.ValidStatusUpdate(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order status", "error": err.Error()})
			}
			return
		}

		order.Status = models.OrderStatus(input.Status)
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order status", "error": err.Error()})
			return
		}
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}

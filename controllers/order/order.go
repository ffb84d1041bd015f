package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
	"github.com/ararara127/5Scent/utils"
)

const ordersPerPage = 10

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderInput struct {
	ShippingAddress string           `json:"shipping_address" binding:"required,max=500"`
	PaymentMethod   string           `json:"payment_method" binding:"required,oneof=credit_card debit_card qris cod"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type AddTrackingInput struct {
	TrackingNumber string `json:"tracking_number" binding:"required,max=100"`
}

// -------- Handlers --------

// POST /orders
//
// The unit price on each line is taken from the request as submitted, not
// re-derived from the catalog. POS is the opposite; see the pos package.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		for _, item := range input.Items {
			var count int64
			if err := db.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Count(&count).Error; err != nil || count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
		}

		var totalPrice float64
		details := make([]models.OrderDetail, 0, len(input.Items))
		for _, item := range input.Items {
			totalPrice += *item.Price * float64(item.Quantity)
			details = append(details, models.OrderDetail{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     *item.Price,
			})
		}

		order := models.Order{
			UserID:          userID,
			TotalPrice:      totalPrice,
			Status:          models.OrderStatusPending,
			PaymentMethod:   input.PaymentMethod,
			PaymentStatus:   models.PaymentStatusUnpaid,
			ShippingAddress: input.ShippingAddress,
			OrderDetails:    details,
		}
		// Order row and its detail lines commit together or not at all.
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order":   order,
		})
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		query := db.Model(&models.Order{}).Where("user_id = ?", userID)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		page := utils.PageParam(c)
		var orders []models.Order
		if err := query.Preload("OrderDetails.Product").
			Order("created_at DESC").
			Scopes(utils.Paginate(page, ordersPerPage)).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, utils.NewPagination(orders, page, ordersPerPage, total))
	}
}

// GET /orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("OrderDetails.Product").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// POST /orders/:id/cancel
//
// Customers may only cancel before shipping: pending or packaging.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		cancellable := false
		for _, s := range models.CancellableStatuses {
			if order.Status == s {
				cancellable = true
				break
			}
		}
		if !cancellable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order cannot be cancelled in current status"})
			return
		}

		order.Status = models.OrderStatusCancelled
		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{
			"message": "Order cancelled successfully",
			"order":   order,
		})
	}
}

// PUT /orders/:id/status (admin)
//
// Any of the five states may be set from any other; transitions are not
// forced forward-only. Tests pin this looseness so a future tightening shows
// up as an explicit behavior change.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidOrderStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		order.Status = models.OrderStatus(input.Status)
		if err := db.Model(&order).Update("status", order.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated",
			"order":   order,
		})
	}
}

// POST /orders/:id/delivered (admin)
func MarkDelivered(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		order.Status = models.OrderStatusDelivered
		if err := db.Model(&order).Update("status", models.OrderStatusDelivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{
			"message": "Order marked as delivered",
			"order":   order,
		})
	}
}

// POST /orders/:id/tracking
func AddTracking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddTrackingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		order.TrackingNumber = &input.TrackingNumber
		if err := db.Model(&order).Update("tracking_number", input.TrackingNumber).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tracking number"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Tracking number added",
			"order":   order,
		})
	}
}

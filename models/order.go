package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting packing
	OrderStatusPackaging OrderStatus = "packaging" // Being packed
	OrderStatusShipped   OrderStatus = "shipped"   // Handed to courier
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// CancellableStatuses are the only states a customer may cancel from.
var CancellableStatuses = []OrderStatus{OrderStatusPending, OrderStatusPackaging}

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPackaging, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string        `gorm:"not null" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'unpaid'" json:"payment_status"`
	ShippingAddress string        `gorm:"not null" json:"shipping_address"`
	TrackingNumber  *string       `json:"tracking_number"`
	OrderDetails    []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_details,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderDetail keeps the unit price as written at purchase time. Later catalog
// price changes must not alter historical orders.
type OrderDetail struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

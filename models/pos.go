package models

import "time"

const DefaultPOSCustomer = "Walk-in Customer"

// POSTransaction is an in-person sale. Line prices are taken from the catalog
// at sale time and snapshotted onto POSItem rows.
type POSTransaction struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"`
	CustomerName  string    `gorm:"default:'Walk-in Customer'" json:"customer_name"`
	Items         []POSItem `gorm:"foreignKey:POSTransactionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type POSItem struct {
	ID               uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	POSTransactionID uint    `gorm:"not null;index" json:"pos_transaction_id"`
	ProductID        uint    `gorm:"not null" json:"product_id"`
	Product          Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity         int     `gorm:"not null" json:"quantity"`
	Price            float64 `gorm:"not null" json:"price"`
}

package models

import "time"

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Price        float64        `gorm:"not null" json:"price"`
	Stock        int            `gorm:"default:0" json:"stock"`
	Category     string         `gorm:"index" json:"category"`
	ImageURL     string         `json:"image_url"`
	Images       []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Ratings      []Rating       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
	OrderDetails []OrderDetail  `gorm:"foreignKey:ProductID" json:"order_details,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Rating holds one review per (user, product); a second submission updates
// the row in place rather than adding another.
type Rating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_rating_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_rating_user_product" json:"product_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserID    uint       `gorm:"uniqueIndex" json:"-"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// CartItem is one (product, quantity) pair. A cart keeps at most one item
// per product; display data (name, price, image) is joined from the
// products table at read time, never stored on the line.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	CartID    uint `gorm:"index" json:"-"`
	ProductID uint `json:"product"`
	Qty       int  `json:"qty"`
}

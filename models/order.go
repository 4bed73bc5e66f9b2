package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the store
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex" json:"orderRef"`
	UserID          uint            `gorm:"not null;index" json:"-"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"` // e.g. "card", "cod"
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric" json:"totalPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderItem is the frozen snapshot of a product at order time. It carries
// its own name, price and image so later product edits never change what
// the customer bought.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"index" json:"-"`
	ProductID uint            `json:"product"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `gorm:"type:numeric" json:"price"`
	Image     string          `json:"image"`
}

type ShippingAddress struct {
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	PostalCode     string `json:"postalCode"`
	Comments       string `json:"comments,omitempty"`
	ShippingMethod string `json:"shippingMethod,omitempty"`
	Coupon         string `json:"coupon,omitempty"`
}

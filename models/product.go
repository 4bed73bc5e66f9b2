package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	CategoryID   uint            `gorm:"not null;index" json:"category"`
	CollectionID *uint           `gorm:"index" json:"collection,omitempty"`
	Stock        int             `gorm:"default:0" json:"stock"`
	Images       []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductImage records where an uploaded file is served from and the
// storage id needed to remove it when the product goes away.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Position  int    `json:"-"` // keeps the upload order stable
	URL       string `gorm:"not null" json:"url"`
	FileID    string `json:"fileId"`
}

// FirstImageURL returns the lead image, or a placeholder when the product
// has none.
func (p *Product) FirstImageURL() string {
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return PlaceholderImage
}

const PlaceholderImage = "/placeholder.png"

package models

import "time"

type Collection struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	ImageURL    string    `gorm:"not null" json:"image"`
	ImageFileID string    `json:"-"`
	CategoryID  uint      `gorm:"not null;index" json:"-"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

package models

import "time"

// SiteContent is a singleton: at most one row exists. It is created on the
// first admin write and updated in place afterwards.
type SiteContent struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	About        string       `json:"about"`
	Policies     string       `json:"policies"`
	ContactEmail string       `json:"contactEmail"`
	ContactPhone string       `json:"contactPhone"`
	LogoURL      string       `json:"logo"`
	LogoFileID   string       `json:"-"`
	Banners      []SiteBanner `gorm:"foreignKey:SiteContentID;constraint:OnDelete:CASCADE" json:"banners"`
	UpdatedByID  uint         `json:"updatedBy"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// SiteBanner is one image in the ordered banner list. Banners are appended
// on update and removed one at a time.
type SiteBanner struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SiteContentID uint   `gorm:"index" json:"-"`
	Position      int    `json:"-"`
	URL           string `gorm:"not null" json:"url"`
	FileID        string `json:"-"`
}

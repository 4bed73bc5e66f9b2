package siteController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"gorm.io/gorm"
)

const (
	bannerSubdir = "banners"
	logoSubdir   = "logo"
)

// GET /site-content (public)
func GetContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := loadContent(db)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Content not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// POST /site-content (admin, multipart)
//
// Creates the singleton row on first write, updates it in place after.
// New banners are appended to the existing list, never replacing it; a new
// logo replaces the old file.
func AddOrUpdateContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		content, err := loadContent(db)
		if err == gorm.ErrRecordNotFound {
			content = &models.SiteContent{}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}

		if v := c.PostForm("about"); v != "" {
			content.About = v
		}
		if v := c.PostForm("policies"); v != "" {
			content.Policies = v
		}
		if v := c.PostForm("contactEmail"); v != "" {
			content.ContactEmail = v
		}
		if v := c.PostForm("contactPhone"); v != "" {
			content.ContactPhone = v
		}
		content.UpdatedByID = userID

		form, err := c.MultipartForm()
		if err == nil && form != nil {
			position := len(content.Banners)
			for _, file := range form.File["banners"] {
				url, fileID, err := storage.SaveImage(c, file, bannerSubdir)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save banner"})
					return
				}
				content.Banners = append(content.Banners, models.SiteBanner{
					Position: position,
					URL:      url,
					FileID:   fileID,
				})
				position++
			}

			if logos := form.File["logo"]; len(logos) > 0 {
				url, fileID, err := storage.SaveImage(c, logos[0], logoSubdir)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save logo"})
					return
				}
				storage.Remove(content.LogoFileID)
				content.LogoURL = url
				content.LogoFileID = fileID
			}
		}

		if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(content).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save content"})
			return
		}

		c.JSON(http.StatusOK, content)
	}
}

// DELETE /site-content/banner/:id (admin)
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bannerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid banner id"})
			return
		}

		content, err := loadContent(db)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Content not found"})
			return
		}

		var banner *models.SiteBanner
		for i := range content.Banners {
			if content.Banners[i].ID == uint(bannerID) {
				banner = &content.Banners[i]
				break
			}
		}
		if banner == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Banner not found"})
			return
		}

		if err := db.Delete(&models.SiteBanner{}, banner.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete banner"})
			return
		}
		storage.Remove(banner.FileID)

		content, err = loadContent(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// loadContent fetches the singleton with its banners in upload order.
func loadContent(db *gorm.DB) (*models.SiteContent, error) {
	var content models.SiteContent
	err := db.Preload("Banners", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

package collectionController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"gorm.io/gorm"
)

const imageSubdir = "collections"

// POST /collections (admin, multipart)
func CreateCollection(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		categoryStr := c.PostForm("category")
		if name == "" || categoryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name and category are required"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}
		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category does not exist"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
			return
		}
		url, fileID, err := storage.SaveImage(c, file, imageSubdir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
			return
		}

		collection := models.Collection{
			Name:        name,
			ImageURL:    url,
			ImageFileID: fileID,
			CategoryID:  uint(categoryID),
			Category:    category,
		}
		if err := db.Create(&collection).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create collection"})
			return
		}

		c.JSON(http.StatusCreated, collection)
	}
}

// GET /collections?categoryId=N
func GetCollections(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Order("created_at DESC")
		if categoryID := c.Query("categoryId"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var collections []models.Collection
		if err := query.Find(&collections).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch collections"})
			return
		}
		c.JSON(http.StatusOK, collections)
	}
}

// DELETE /collections/:id (admin)
func DeleteCollection(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var collection models.Collection
		if err := db.First(&collection, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Collection not found"})
			return
		}

		if err := db.Delete(&collection).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete collection"})
			return
		}
		storage.Remove(collection.ImageFileID)

		c.JSON(http.StatusOK, gin.H{"message": "Collection deleted successfully"})
	}
}

package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateProduct updates a product by ID. Fields are optional; a new image
// replaces the old one and the old file is removed from disk.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Images").First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("category"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
				return
			}
			product.CategoryID = uint(id64)
		}
		if v := c.PostForm("collection"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid collection"})
				return
			}
			cid := uint(id64)
			product.CollectionID = &cid
		}
		if v := c.PostForm("stock"); v != "" {
			s, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
				return
			}
			product.Stock = s
		}

		var oldFileIDs []string
		newFileID := ""
		if file, err := c.FormFile("image"); err == nil {
			url, fileID, err := storage.SaveImage(c, file, imageSubdir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
				return
			}
			newFileID = fileID

			for _, img := range product.Images {
				oldFileIDs = append(oldFileIDs, img.FileID)
			}
			product.Images = []models.ProductImage{{ProductID: product.ID, Position: 0, URL: url, FileID: fileID}}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if newFileID != "" {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
			}
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
		})
		if err != nil {
			storage.Remove(newFileID)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		// old files go only once the replacement is committed
		for _, id := range oldFileIDs {
			storage.Remove(id)
		}

		c.JSON(http.StatusOK, product)
	}
}

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

const imageSubdir = "products"

// CreateProduct creates a new product from a multipart form. The image
// file is required; price is parsed into a decimal, never a float.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryStr := c.PostForm("category")
		if name == "" || priceStr == "" || categoryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name, price and category are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
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

		var collectionID *uint
		if v := c.PostForm("collection"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid collection"})
				return
			}
			id := uint(id64)
			collectionID = &id
		}

		stock := 0
		if v := c.PostForm("stock"); v != "" {
			if s, err := strconv.Atoi(v); err == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
				return
			}
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
			return
		}
		url, fileID, err := storage.SaveImage(c, file, imageSubdir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
			return
		}

		product := models.Product{
			Name:         name,
			Description:  c.PostForm("description"),
			Price:        price,
			CategoryID:   uint(categoryID),
			CollectionID: collectionID,
			Stock:        stock,
			Images:       []models.ProductImage{{Position: 0, URL: url, FileID: fileID}},
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

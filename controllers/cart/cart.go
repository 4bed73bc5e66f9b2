package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}

type QuantityDeltaInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Delta     int  `json:"delta" binding:"required"`
}

// CartLine is a cart item enriched with display data from the products
// table. When the product is gone the line degrades to a placeholder
// instead of failing the whole cart fetch.
type CartLine struct {
	Product uint            `json:"product"`
	Qty     int             `json:"qty"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		cart, err := LoadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, EnrichCart(db, cart.Items))
	}
}

// POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate product"})
			return
		}

		cart, err := LoadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		items := AddItem(cart.Items, input.ProductID, input.Qty)
		if err := SaveCartItems(db, cart.CartID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, EnrichCart(db, items))
	}
}

// PUT /cart/quantity
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input QuantityDeltaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := LoadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		items := ApplyQuantityDelta(cart.Items, input.ProductID, input.Delta)
		if err := SaveCartItems(db, cart.CartID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, EnrichCart(db, items))
	}
}

// DELETE /cart/:productId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		productID, ok := parseUintParam(c, "productId")
		if !ok {
			return
		}

		cart, err := LoadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		// removing an absent line is not an error
		items := RemoveItem(cart.Items, productID)
		if err := SaveCartItems(db, cart.CartID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, EnrichCart(db, items))
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		cart, err := LoadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		if err := SaveCartItems(db, cart.CartID, nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// LoadOrCreateCart fetches the user's cart with its items, creating an
// empty one on first touch.
func LoadOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// SaveCartItems replaces the stored lines with the given list in one
// transaction. Read-modify-write without a version check: a concurrent
// writer to the same cart follows last-writer-wins.
func SaveCartItems(db *gorm.DB, cartID uint, items []models.CartItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			row := models.CartItem{CartID: cartID, ProductID: item.ProductID, Qty: item.Qty}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnrichCart joins display data onto cart lines. Products that no longer
// exist come back as placeholder lines; checkout never reads these, it
// uses the snapshot the client submits.
func EnrichCart(db *gorm.DB, items []models.CartItem) []CartLine {
	lines := make([]CartLine, 0, len(items))
	if len(items) == 0 {
		return lines
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var products []models.Product
	byID := make(map[uint]models.Product, len(ids))
	if err := db.Preload("Images").Where("id IN ?", ids).Find(&products).Error; err == nil {
		for _, p := range products {
			byID[p.ID] = p
		}
	}

	for _, item := range items {
		line := CartLine{Product: item.ProductID, Qty: item.Qty}
		if p, ok := byID[item.ProductID]; ok {
			line.Name = p.Name
			line.Price = p.Price
			line.Image = p.FirstImageURL()
		} else {
			line.Name = "unknown"
			line.Price = decimal.Zero
			line.Image = models.PlaceholderImage
		}
		lines = append(lines, line)
	}
	return lines
}

package cartControllers_test

import (
	"net/http"
	"testing"

	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartStartsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)

	w := testutil.DoJSON(t, r, http.MethodGet, "/cart", nil, testutil.TokenFor(t, user))

	require.Equal(t, http.StatusOK, w.Code)
	var cart []cartControllers.CartLine
	testutil.Decode(t, w, &cart)
	assert.Empty(t, cart)
}

func TestAddToCartTwiceAccumulatesQuantity(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)
	product := testutil.CreateProduct(t, db, "mug", "12.50", 10)
	token := testutil.TokenFor(t, user)

	body := map[string]interface{}{"productId": product.ID, "qty": 1}
	w := testutil.DoJSON(t, r, http.MethodPost, "/cart/add", body, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/cart/add", body, token)
	require.Equal(t, http.StatusOK, w.Code)

	var cart []cartControllers.CartLine
	testutil.Decode(t, w, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, product.ID, cart[0].Product)
	assert.Equal(t, 2, cart[0].Qty)
	assert.Equal(t, "mug", cart[0].Name)
	assert.True(t, cart[0].Price.Equal(product.Price))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)

	body := map[string]interface{}{"productId": 9999, "qty": 1}
	w := testutil.DoJSON(t, r, http.MethodPost, "/cart/add", body, testutil.TokenFor(t, user))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)
	product := testutil.CreateProduct(t, db, "mug", "12.50", 10)
	token := testutil.TokenFor(t, user)

	add := map[string]interface{}{"productId": product.ID, "qty": 3}
	require.Equal(t, http.StatusOK, testutil.DoJSON(t, r, http.MethodPost, "/cart/add", add, token).Code)

	delta := map[string]interface{}{"productId": product.ID, "delta": -100}
	w := testutil.DoJSON(t, r, http.MethodPut, "/cart/quantity", delta, token)

	require.Equal(t, http.StatusOK, w.Code)
	var cart []cartControllers.CartLine
	testutil.Decode(t, w, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Qty)
}

func TestRemoveFromCartAbsentProductSucceeds(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)

	w := testutil.DoJSON(t, r, http.MethodDelete, "/cart/123", nil, testutil.TokenFor(t, user))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCartEmptiesStoredLines(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)
	product := testutil.CreateProduct(t, db, "mug", "12.50", 10)
	token := testutil.TokenFor(t, user)

	add := map[string]interface{}{"productId": product.ID, "qty": 2}
	require.Equal(t, http.StatusOK, testutil.DoJSON(t, r, http.MethodPost, "/cart/add", add, token).Code)

	w := testutil.DoJSON(t, r, http.MethodDelete, "/cart", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnrichCartDegradesDeletedProducts(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)
	product := testutil.CreateProduct(t, db, "mug", "12.50", 10)
	token := testutil.TokenFor(t, user)

	add := map[string]interface{}{"productId": product.ID, "qty": 1}
	require.Equal(t, http.StatusOK, testutil.DoJSON(t, r, http.MethodPost, "/cart/add", add, token).Code)

	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/cart", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var cart []cartControllers.CartLine
	testutil.Decode(t, w, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, "unknown", cart[0].Name)
	assert.True(t, cart[0].Price.IsZero())
	assert.Equal(t, models.PlaceholderImage, cart[0].Image)
}

func TestCartRequiresToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodGet, "/cart", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

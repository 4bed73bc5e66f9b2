package cartControllers

import "github.com/junaidrashid-git/storefront-api/models"

// Pure cart-list operations. Each returns a fresh slice holding at most
// one line per product id, every quantity >= 1. Persistence is the
// handlers' problem.

// MergeCarts folds a guest cart into a user cart at login. Quantities for
// the same product add up; lines the user cart lacks are appended in
// guest-cart order. Existing user lines keep their positions.
func MergeCarts(userCart, guestCart []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(userCart))
	copy(merged, userCart)

	for _, guestItem := range guestCart {
		qty := guestItem.Qty
		if qty < 1 {
			qty = 1
		}
		if i := indexOf(merged, guestItem.ProductID); i >= 0 {
			merged[i].Qty += qty
		} else {
			merged = append(merged, models.CartItem{ProductID: guestItem.ProductID, Qty: qty})
		}
	}
	return merged
}

// ApplyQuantityDelta adjusts one line by delta, flooring at 1. A dedicated
// remove call deletes lines; this never does. Unknown product ids are a
// no-op.
func ApplyQuantityDelta(cart []models.CartItem, productID uint, delta int) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)

	if i := indexOf(out, productID); i >= 0 {
		qty := out[i].Qty + delta
		if qty < 1 {
			qty = 1
		}
		out[i].Qty = qty
	}
	return out
}

// AddItem increments an existing line by qty or appends a new one.
func AddItem(cart []models.CartItem, productID uint, qty int) []models.CartItem {
	if qty < 1 {
		qty = 1
	}
	out := make([]models.CartItem, len(cart))
	copy(out, cart)

	if i := indexOf(out, productID); i >= 0 {
		out[i].Qty += qty
		return out
	}
	return append(out, models.CartItem{ProductID: productID, Qty: qty})
}

// RemoveItem drops the line for productID. Absent lines are fine.
func RemoveItem(cart []models.CartItem, productID uint) []models.CartItem {
	out := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

func indexOf(cart []models.CartItem, productID uint) int {
	for i, item := range cart {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

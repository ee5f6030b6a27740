package service

import "storefront-backend/internal/model"

// CartTotal sums price × quantity over the cart in integer minor units.
// Rows whose item has been deleted from the catalog contribute nothing.
// Pure and order-independent.
func CartTotal(cartItems []*model.CartItem) int64 {
	var total int64
	for _, cartItem := range cartItems {
		if cartItem.Item == nil {
			continue
		}
		total += cartItem.Item.Price * int64(cartItem.Quantity)
	}
	return total
}

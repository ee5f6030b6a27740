package service

import (
	"context"
	"time"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
)

// fakeUserRepo implements repository.UserRepository over a slice for testing.
type fakeUserRepo struct {
	users []*model.User

	setResetTokenErr error
	resetPasswordErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) FindByResetToken(_ context.Context, token string, notBefore time.Time) (*model.User, error) {
	for _, user := range f.users {
		if user.ResetToken != nil && *user.ResetToken == token &&
			user.ResetTokenExpiry != nil && !user.ResetTokenExpiry.Before(notBefore) {
			return user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, userID, token string, expiry time.Time) error {
	if f.setResetTokenErr != nil {
		return f.setResetTokenErr
	}
	for _, user := range f.users {
		if user.ID == userID {
			user.ResetToken = &token
			user.ResetTokenExpiry = &expiry
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, userID, passwordHash string) error {
	if f.resetPasswordErr != nil {
		return f.resetPasswordErr
	}
	for _, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			user.ResetToken = nil
			user.ResetTokenExpiry = nil
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeUserRepo) ReplacePermissions(_ context.Context, userID string, permissions model.PermissionSet) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.Permissions = permissions
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	return f.users, nil
}

// fakeItemRepo implements repository.ItemRepository for testing.
type fakeItemRepo struct {
	items []*model.Item

	deleteCalls int
}

func (f *fakeItemRepo) Create(_ context.Context, item *model.Item) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeItemRepo) FindByID(_ context.Context, itemID string) (*model.Item, error) {
	for _, item := range f.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeItemRepo) Update(_ context.Context, itemID string, updates map[string]interface{}) (*model.Item, error) {
	for _, item := range f.items {
		if item.ID == itemID {
			if title, ok := updates["title"].(string); ok {
				item.Title = title
			}
			if price, ok := updates["price"].(int64); ok {
				item.Price = price
			}
			return item, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeItemRepo) Delete(_ context.Context, itemID string) error {
	f.deleteCalls++
	for i, item := range f.items {
		if item.ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeItemRepo) List(_ context.Context, offset, limit int) ([]*model.Item, error) {
	if offset >= len(f.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[offset:end], nil
}

func (f *fakeItemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

// fakeCartRepo implements repository.CartRepository for testing.
type fakeCartRepo struct {
	cartItems []*model.CartItem

	listErr      error
	deleteErr    error
	deletedIDs   []string
	addOneCalls  int
	deleteCalled bool
}

func (f *fakeCartRepo) AddOne(_ context.Context, userID, itemID string) error {
	f.addOneCalls++
	for _, cartItem := range f.cartItems {
		if cartItem.UserID == userID && cartItem.ItemID == itemID {
			cartItem.Quantity++
			return nil
		}
	}
	f.cartItems = append(f.cartItems, &model.CartItem{
		ID:       "cart-" + itemID,
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	})
	return nil
}

func (f *fakeCartRepo) FindByID(_ context.Context, cartItemID string) (*model.CartItem, error) {
	for _, cartItem := range f.cartItems {
		if cartItem.ID == cartItemID {
			return cartItem, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCartRepo) FindByUserAndItem(_ context.Context, userID, itemID string) (*model.CartItem, error) {
	for _, cartItem := range f.cartItems {
		if cartItem.UserID == userID && cartItem.ItemID == itemID {
			return cartItem, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]*model.CartItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*model.CartItem
	for _, cartItem := range f.cartItems {
		if cartItem.UserID == userID {
			result = append(result, cartItem)
		}
	}
	return result, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, cartItemID string) error {
	f.deleteCalled = true
	for i, cartItem := range f.cartItems {
		if cartItem.ID == cartItemID {
			f.cartItems = append(f.cartItems[:i], f.cartItems[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteByIDs(_ context.Context, cartItemIDs []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, cartItemIDs...)
	remaining := f.cartItems[:0]
	for _, cartItem := range f.cartItems {
		keep := true
		for _, id := range cartItemIDs {
			if cartItem.ID == id {
				keep = false
				break
			}
		}
		if keep {
			remaining = append(remaining, cartItem)
		}
	}
	f.cartItems = remaining
	return nil
}

// fakeOrderRepo implements repository.OrderRepository for testing.
type fakeOrderRepo struct {
	orders []*model.Order

	createErr error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, orderID string) (*model.Order, error) {
	for _, order := range f.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]*model.Order, error) {
	var result []*model.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

// fakeGateway implements client.PaymentGateway for testing.
type fakeGateway struct {
	result *client.ChargeResult
	err    error

	charges int
	// captured from the last Charge call
	lastAmount   int64
	lastCurrency string
	lastToken    string
}

func (f *fakeGateway) Charge(_ context.Context, amountMinorUnits int64, currency, paymentToken string) (*client.ChargeResult, error) {
	f.charges++
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	f.lastToken = paymentToken
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &client.ChargeResult{TransactionID: "tx-default", Amount: amountMinorUnits}, nil
}

// fakeMailer implements client.Mailer for testing.
type fakeMailer struct {
	err error

	sentTo      string
	sentSubject string
	sentBody    string
	sendCalls   int
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.sendCalls++
	f.sentTo = to
	f.sentSubject = subject
	f.sentBody = htmlBody
	return f.err
}

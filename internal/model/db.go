package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"` // lowercase-normalized
	Name         string `gorm:"size:255" json:"name"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`

	Permissions PermissionSet `gorm:"type:text;not null" json:"permissions"`

	// both set while a reset is pending, both cleared on consumption
	ResetToken       *string    `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Item struct {
	ID          string `gorm:"primaryKey;size:36;not null" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:512" json:"image"`
	LargeImage  string `gorm:"size:512" json:"large_image"`
	// integer minor-currency units (cents)
	Price int64 `gorm:"not null" json:"price"`

	UserID *string `gorm:"size:36;index" json:"user_id"` // owner, nullable

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID string `gorm:"primaryKey;size:36;not null" json:"id"`
	// at most one row per (user, item) pair; repeat adds increment quantity
	UserID   string `gorm:"size:36;uniqueIndex:idx_cart_user_item;not null" json:"user_id"`
	ItemID   string `gorm:"size:36;uniqueIndex:idx_cart_user_item;not null" json:"item_id"`
	Quantity int32  `gorm:"not null" json:"quantity"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order is an immutable snapshot of a charged cart. Total carries the
// gateway-confirmed amount, not a locally recomputed one.
type Order struct {
	ID     string `gorm:"primaryKey;size:36;not null" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	Total  int64  `gorm:"not null" json:"total"`
	// gateway transaction id
	Charge string `gorm:"size:64;not null" json:"charge"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem is a field-wise copy of an Item at purchase time. It carries no
// reference back to the source item so later catalog edits cannot rewrite
// order history.
type OrderItem struct {
	ID      string `gorm:"primaryKey;size:36;not null" json:"id"`
	OrderID string `gorm:"size:36;index;not null" json:"order_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:512" json:"image"`
	LargeImage  string `gorm:"size:512" json:"large_image"`
	Price       int64  `gorm:"not null" json:"price"`
	Quantity    int32  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}

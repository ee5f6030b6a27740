package dto

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type UpdatePermissionsRequest struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions"`
}

type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LargeImage  string `json:"large_image"`
	Price       int64  `json:"price"`
}

// UpdateItemRequest carries a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	LargeImage  *string `json:"large_image"`
	Price       *int64  `json:"price"`
}

type AddToCartRequest struct {
	ItemID string `json:"item_id"`
}

type PlaceOrderRequest struct {
	// payment source token from the gateway's client SDK
	PaymentToken string `json:"payment_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

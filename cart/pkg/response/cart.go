package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	CartItems  []CartItem      `json:"cart_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ID         uuid.UUID       `json:"id"`
	UserId     uuid.UUID       `json:"user_id"`
}

type CartItem struct {
	ProductName string          `json:"product_name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ID          uuid.UUID       `json:"id"`
	CartId      uuid.UUID       `json:"cart_id"`
	ProductId   uuid.UUID       `json:"product_id"`
	Quantity    int32           `json:"quantity"`
	IsListed    bool            `json:"is_listed"`
}

type Wishlist struct {
	WishlistItems []WishlistItem `json:"wishlist_items"`
	ID            uuid.UUID      `json:"id"`
	UserId        uuid.UUID      `json:"user_id"`
}

type WishlistItem struct {
	ProductName string          `json:"product_name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	ID          uuid.UUID       `json:"id"`
	WishlistId  uuid.UUID       `json:"wishlist_id"`
	ProductId   uuid.UUID       `json:"product_id"`
	IsListed    bool            `json:"is_listed"`
}

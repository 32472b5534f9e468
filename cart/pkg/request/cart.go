package request

import "github.com/google/uuid"

type AddCartItem struct {
	ProductId uuid.UUID `validate:"required,uuid" json:"product_id"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartItemQuantity struct {
	ProductId uuid.UUID `validate:"required,uuid"  json:"-"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

type AddWishlistItem struct {
	ProductId uuid.UUID `validate:"required,uuid" json:"product_id"`
}

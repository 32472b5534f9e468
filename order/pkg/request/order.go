package request

import "github.com/google/uuid"

type PlaceOrder struct {
	PaymentMethod string    `validate:"required"      json:"payment_method"`
	AddressId     uuid.UUID `validate:"required,uuid" json:"address_id"`
}

type SetOrderStatus struct {
	OrderStatus string    `validate:"required" json:"order_status"`
	OrderId     uuid.UUID `validate:"required,uuid" json:"-"`
}

type SetPaymentStatus struct {
	PaymentStatus string    `validate:"required" json:"payment_status"`
	OrderId       uuid.UUID `validate:"required,uuid" json:"-"`
}

type FindOrders struct {
	Page    int32 `validate:"gte=1"         json:"page"`
	PerPage int32 `validate:"gte=1,lte=100" json:"per_page"`
}

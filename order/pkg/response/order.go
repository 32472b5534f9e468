package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartResponse "github.com/furnspace/furnspace/cart/pkg/response"
)

type Order struct {
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	OrderItems    []OrderItem     `json:"order_items"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	OrderStatus   string          `json:"order_status"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	ID            uuid.UUID       `json:"id"`
	UserId        uuid.UUID       `json:"user_id"`
	AddressId     uuid.UUID       `json:"address_id"`
}

type OrderItem struct {
	ProductName string          `json:"product_name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	ID          uuid.UUID       `json:"id"`
	OrderId     uuid.UUID       `json:"order_id"`
	ProductId   uuid.UUID       `json:"product_id"`
	Quantity    int32           `json:"quantity"`
}

type Address struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FullName  string    `json:"full_name"`
	Street    string    `json:"street"`
	Apartment string    `json:"apartment"`
	Town      string    `json:"town"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Postcode  string    `json:"postcode"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	ID        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
}

type Checkout struct {
	Cart      cartResponse.Cart     `json:"cart"`
	Wishlist  cartResponse.Wishlist `json:"wishlist"`
	Addresses []Address             `json:"addresses"`
}

type Confirmation struct {
	DeliveryDate time.Time `json:"delivery_date"`
	Order        Order     `json:"order"`
	Address      Address   `json:"address"`
}

package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	ID        uuid.UUID `json:"id"`
	IsListed  bool      `json:"is_listed"`
}

type Product struct {
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Stock       int32           `json:"stock"`
	IsListed    bool            `json:"is_listed"`
}

type ProductDetail struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}

type ProductPage struct {
	Products []Product `json:"products"`
	Page     int32     `json:"page"`
	PerPage  int32     `json:"per_page"`
	Total    int64     `json:"total"`
}

package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCategory struct {
	Title string `validate:"required" json:"title"`
	Slug  string `validate:"required" json:"slug"`
	Image string `                    json:"image"`
}

type UpdateCategory struct {
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Image    string    `json:"image"`
	ID       uuid.UUID `json:"-"`
	IsListed bool      `json:"is_listed"`
}

type CreateProduct struct {
	Name        string          `validate:"required"      json:"name"`
	Description string          `                         json:"description"`
	Image       string          `                         json:"image"`
	Price       decimal.Decimal `validate:"required"      json:"price"`
	CategoryId  uuid.UUID       `validate:"required,uuid" json:"category_id"`
	Stock       int32           `validate:"gte=0"         json:"stock"`
}

type UpdateProduct struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Price       *decimal.Decimal `json:"price"`
	CategoryId  *uuid.UUID       `json:"category_id"`
	Stock       *int32           `json:"stock"`
	ID          uuid.UUID        `json:"-"`
	IsListed    bool             `json:"is_listed"`
}

type FilterProducts struct {
	Categories []uuid.UUID `validate:"required,min=1" json:"categories"`
}

type FindProducts struct {
	Page    int32 `validate:"gte=1"         json:"page"`
	PerPage int32 `validate:"gte=1,lte=100" json:"per_page"`
}

package repository

import (
	"github.com/shopspring/decimal"

	cartResponse "github.com/furnspace/furnspace/cart/pkg/response"
	catalogResponse "github.com/furnspace/furnspace/catalog/pkg/response"
	orderResponse "github.com/furnspace/furnspace/order/pkg/response"
	userResponse "github.com/furnspace/furnspace/user/pkg/response"
)

func (u User) Response() userResponse.User {
	return userResponse.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		IsAdmin:    u.IsAdmin,
		IsVerified: u.IsVerified,
		IsListed:   u.IsListed,
		CreatedAt:  u.CreatedAt.Time,
		UpdatedAt:  u.UpdatedAt.Time,
	}
}

func (cat Category) Response() catalogResponse.Category {
	return catalogResponse.Category{
		ID:        cat.ID,
		Title:     cat.Title,
		Slug:      cat.Slug,
		Image:     cat.Image.String,
		IsListed:  cat.IsListed,
		CreatedAt: cat.CreatedAt.Time,
		UpdatedAt: cat.UpdatedAt.Time,
	}
}

func (p Product) Response() catalogResponse.Product {
	return catalogResponse.Product{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description.String,
		Price:       DecimalFromNumeric(p.Price),
		Stock:       p.Stock,
		Image:       p.Image.String,
		IsListed:    p.IsListed,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (f FindCartItemsRow) Response() cartResponse.CartItem {
	price := DecimalFromNumeric(f.Price)
	return cartResponse.CartItem{
		ID:          f.ID,
		CartId:      f.CartID,
		ProductId:   f.ProductID,
		ProductName: f.ProductName,
		Image:       f.Image.String,
		Price:       price,
		Subtotal:    price.Mul(decimal.NewFromInt32(f.Quantity)),
		Quantity:    f.Quantity,
		IsListed:    f.IsListed,
	}
}

func (f FindWishlistItemsRow) Response() cartResponse.WishlistItem {
	return cartResponse.WishlistItem{
		ID:          f.ID,
		WishlistId:  f.WishlistID,
		ProductId:   f.ProductID,
		ProductName: f.ProductName,
		Image:       f.Image.String,
		Price:       DecimalFromNumeric(f.Price),
		IsListed:    f.IsListed,
	}
}

func (o Order) Response(items []FindOrderItemsRow) orderResponse.Order {
	orderItems := make([]orderResponse.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, item.Response())
	}
	return orderResponse.Order{
		ID:            o.ID,
		UserId:        o.UserID,
		AddressId:     o.AddressID,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.OrderStatus),
		TotalPrice:    DecimalFromNumeric(o.TotalPrice),
		OrderItems:    orderItems,
		CreatedAt:     o.CreatedAt.Time,
		UpdatedAt:     o.UpdatedAt.Time,
	}
}

func (f FindOrderItemsRow) Response() orderResponse.OrderItem {
	return orderResponse.OrderItem{
		ID:          f.ID,
		OrderId:     f.OrderID,
		ProductId:   f.ProductID,
		ProductName: f.ProductName,
		Image:       f.Image.String,
		Price:       DecimalFromNumeric(f.Price),
		Quantity:    f.Quantity,
	}
}

func (a Address) Response() orderResponse.Address {
	return orderResponse.Address{
		ID:        a.ID,
		UserId:    a.UserID,
		FullName:  a.FullName,
		Street:    a.Street,
		Apartment: a.Apartment.String,
		Town:      a.Town,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Phone:     a.Phone,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Time,
		UpdatedAt: a.UpdatedAt.Time,
	}
}

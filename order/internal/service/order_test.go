package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/repository"
	"github.com/furnspace/furnspace/order/pkg/request"
)

func seedUser(t *testing.T, c context.Context, env testEnv) repository.User {
	t.Helper()
	user, err := env.queries.InsertUser(c, repository.InsertUserParams{
		Name:       "Customer",
		Email:      fmt.Sprintf("%s@example.com", uuid.NewString()),
		Phone:      "0123456789",
		Password:   "hashed",
		IsVerified: true,
	})
	require.NoError(t, err)
	return user
}

func seedProduct(
	t *testing.T,
	c context.Context,
	env testEnv,
	price decimal.Decimal,
) repository.Product {
	t.Helper()
	category, err := env.queries.InsertCategory(c, repository.InsertCategoryParams{
		Title: "Sofas",
		Slug:  fmt.Sprintf("sofas-%s", uuid.NewString()),
	})
	require.NoError(t, err)
	product, err := env.queries.InsertProduct(c, repository.InsertProductParams{
		CategoryID: category.ID,
		Name:       "Two seater sofa",
		Price:      repository.NumericFromDecimal(price),
		Stock:      10,
	})
	require.NoError(t, err)
	return product
}

func seedAddress(t *testing.T, c context.Context, env testEnv, userId uuid.UUID) repository.Address {
	t.Helper()
	address, err := env.queries.InsertAddress(c, repository.InsertAddressParams{
		UserID:    userId,
		FullName:  "Customer",
		Street:    "1 Main Street",
		Apartment: pgtype.Text{},
		Town:      "Townsville",
		City:      "Metropolis",
		State:     "State",
		Postcode:  "12345",
		Phone:     "0123456789",
		Email:     "customer@example.com",
	})
	require.NoError(t, err)
	return address
}

func seedCartItem(
	t *testing.T,
	c context.Context,
	env testEnv,
	userId, productId uuid.UUID,
	quantity int32,
) repository.Cart {
	t.Helper()
	cart, err := env.queries.UpsertCart(c, userId)
	require.NoError(t, err)
	_, err = env.queries.UpsertCartItem(c, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		ProductID: productId,
		Quantity:  quantity,
	})
	require.NoError(t, err)
	return cart
}

func TestPrepareCheckout(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)

	checkout, err := env.service.PrepareCheckout(c, user.ID)
	require.NoError(t, err)
	assert.Empty(t, checkout.Cart.CartItems)
	assert.True(t, checkout.Cart.TotalPrice.IsZero())
	assert.Empty(t, checkout.Wishlist.WishlistItems)
	assert.Empty(t, checkout.Addresses)

	address := seedAddress(t, c, env, user.ID)
	price := decimal.RequireFromString("99.00")
	product := seedProduct(t, c, env, price)
	seedCartItem(t, c, env, user.ID, product.ID, 2)

	checkout, err = env.service.PrepareCheckout(c, user.ID)
	require.NoError(t, err)
	require.Len(t, checkout.Cart.CartItems, 1)
	assert.True(t, price.Mul(decimal.NewFromInt(2)).Equal(checkout.Cart.TotalPrice))
	require.Len(t, checkout.Addresses, 1)
	assert.Equal(t, address.ID, checkout.Addresses[0].ID)
}

func TestPlaceOrder(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	price := decimal.RequireFromString("199.99")
	product := seedProduct(t, c, env, price)
	cart := seedCartItem(t, c, env, user.ID, product.ID, 3)

	order, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserId)
	assert.Equal(t, address.ID, order.AddressId)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Equal(t, string(repository.OrderStatusPending), order.OrderStatus)
	assert.Equal(t, string(repository.PaymentStatusPending), order.PaymentStatus)
	assert.True(t, price.Mul(decimal.NewFromInt(3)).Equal(order.TotalPrice))

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, product.ID, order.OrderItems[0].ProductId)
	assert.EqualValues(t, 3, order.OrderItems[0].Quantity)
	assert.True(t, price.Equal(order.OrderItems[0].Price))

	items, err := env.queries.FindCartItems(c, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPlaceOrderKeepsPriceSnapshot(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	price := decimal.RequireFromString("50.00")
	product := seedProduct(t, c, env, price)
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	order, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "card",
		AddressId:     address.ID,
	})
	require.NoError(t, err)

	newPrice := repository.NumericFromDecimal(decimal.RequireFromString("75.00"))
	_, err = env.queries.UpdateProduct(c, repository.UpdateProductParams{
		ID:       product.ID,
		Price:    &newPrice,
		IsListed: true,
	})
	require.NoError(t, err)

	confirmation, err := env.service.GetOrderConfirmation(c, user.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, confirmation.Order.OrderItems, 1)
	assert.True(t, price.Equal(confirmation.Order.OrderItems[0].Price))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)

	_, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	assert.ErrorIs(t, err, commonErrors.ErrEmptyCart)
}

func TestPlaceOrderUnknownAddress(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"))
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	_, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     uuid.New(),
	})
	assert.ErrorIs(t, err, commonErrors.ErrAddressRequired)
}

func TestGetOrderConfirmation(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"))
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	order, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	require.NoError(t, err)

	confirmation, err := env.service.GetOrderConfirmation(c, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, confirmation.Order.ID)
	assert.Equal(t, address.ID, confirmation.Address.ID)
	assert.Equal(
		t,
		confirmation.Order.CreatedAt.Add(deliveryLeadTime),
		confirmation.DeliveryDate,
	)

	other := seedUser(t, c, env)
	_, err = env.service.GetOrderConfirmation(c, other.ID, order.ID)
	assert.ErrorIs(t, err, commonErrors.ErrNotFound)

	deleted, err := env.queries.DeleteAddress(c, repository.DeleteAddressParams{
		ID:     address.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)
	_, err = env.service.GetOrderConfirmation(c, user.ID, order.ID)
	assert.ErrorIs(t, err, commonErrors.ErrNotFound)
}

func TestCancelOrder(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"))
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	order, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	require.NoError(t, err)

	cancelled, err := env.service.CancelOrder(c, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(repository.OrderStatusCancelled), cancelled.OrderStatus)

	cancelled, err = env.service.CancelOrder(c, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(repository.OrderStatusCancelled), cancelled.OrderStatus)

	other := seedUser(t, c, env)
	_, err = env.service.CancelOrder(c, other.ID, order.ID)
	assert.ErrorIs(t, err, commonErrors.ErrNotFound)
}

func TestSetOrderStatus(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"))
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	order, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	require.NoError(t, err)

	updated, err := env.service.SetOrderStatus(c, request.SetOrderStatus{
		OrderId:     order.ID,
		OrderStatus: string(repository.OrderStatusProcessing),
	})
	require.NoError(t, err)
	assert.Equal(t, string(repository.OrderStatusProcessing), updated.OrderStatus)

	_, err = env.service.SetOrderStatus(c, request.SetOrderStatus{
		OrderId:     order.ID,
		OrderStatus: string(repository.OrderStatusDelivered),
	})
	assert.ErrorIs(t, err, commonErrors.ErrForbiddenTransition)

	_, err = env.service.SetOrderStatus(c, request.SetOrderStatus{
		OrderId:     order.ID,
		OrderStatus: "Teleported",
	})
	assert.ErrorIs(t, err, commonErrors.ErrInvalidStatus)

	_, err = env.service.SetPaymentStatus(c, request.SetPaymentStatus{
		OrderId:       order.ID,
		PaymentStatus: "Refunded",
	})
	assert.ErrorIs(t, err, commonErrors.ErrInvalidStatus)

	paid, err := env.service.SetPaymentStatus(c, request.SetPaymentStatus{
		OrderId:       order.ID,
		PaymentStatus: string(repository.PaymentStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(repository.PaymentStatusCompleted), paid.PaymentStatus)
}

func TestCheckoutLock(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	address := seedAddress(t, c, env, user.ID)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"))
	seedCartItem(t, c, env, user.ID, product.ID, 1)

	lockKey := fmt.Sprintf("checkout:%s", user.ID)
	require.NoError(t, env.cache.SetNX(c, lockKey, "1", 30*time.Second).Err())

	_, err := env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	assert.ErrorIs(t, err, commonErrors.ErrCheckoutInProgress)

	require.NoError(t, env.cache.Del(c, lockKey).Err())
	_, err = env.service.PlaceOrder(c, user.ID, request.PlaceOrder{
		PaymentMethod: "cod",
		AddressId:     address.ID,
	})
	assert.NoError(t, err)
}

func TestCartLinesLoadedThroughOrderTransaction(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	product := seedProduct(t, c, env, decimal.RequireFromString("120.00"))

	tx, err := env.pool.Begin(c)
	require.NoError(t, err)
	defer tx.Rollback(c)
	qtx := env.queries.WithTx(tx)

	cart, err := qtx.UpsertCart(c, user.ID)
	require.NoError(t, err)
	_, err = qtx.UpsertCartItem(c, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	// cart rows written inside the transaction are invisible outside of it
	_, _, err = env.service.cartForCheckout(c, env.queries, user.ID)
	assert.ErrorIs(t, err, commonErrors.ErrEmptyCart)

	_, items, err := env.service.cartForCheckout(c, qtx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/furnspace/furnspace/cart/pkg/request"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/repository"
)

type testEnv struct {
	pool        *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	queries     *repository.Queries
	service     *CartService
}

func migrationPath(name string) string {
	return filepath.Join("..", "..", "..", "migrations", name)
}

func setup(t *testing.T, c context.Context) testEnv {
	t.Helper()

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			migrationPath("000001_create_users.up.sql"),
			migrationPath("000002_create_catalog.up.sql"),
			migrationPath("000003_create_carts.up.sql"),
			migrationPath("000004_create_wishlists.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgx config with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating pgx pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	queries := repository.New(pool)
	return testEnv{
		pool:        pool,
		pgContainer: pgContainer,
		queries:     queries,
		service:     NewCartService(queries),
	}
}

func (e testEnv) teardown(t *testing.T) {
	t.Helper()

	e.pool.Close()
	if err := testcontainers.TerminateContainer(e.pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}

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
	listed bool,
) repository.Product {
	t.Helper()
	category, err := env.queries.InsertCategory(c, repository.InsertCategoryParams{
		Title: "Chairs",
		Slug:  fmt.Sprintf("chairs-%s", uuid.NewString()),
	})
	require.NoError(t, err)
	product, err := env.queries.InsertProduct(c, repository.InsertProductParams{
		CategoryID: category.ID,
		Name:       "Armchair",
		Price:      repository.NumericFromDecimal(price),
		Stock:      10,
	})
	require.NoError(t, err)
	if !listed {
		numericPrice := repository.NumericFromDecimal(price)
		product, err = env.queries.UpdateProduct(c, repository.UpdateProductParams{
			ID:       product.ID,
			Price:    &numericPrice,
			IsListed: false,
		})
		require.NoError(t, err)
	}
	return product
}

func TestAddCartItemMergesQuantity(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	price := decimal.RequireFromString("25.50")
	product := seedProduct(t, c, env, price, true)

	cart, err := env.service.AddCartItem(c, user.ID, request.AddCartItem{
		ProductId: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, 2, cart.CartItems[0].Quantity)

	cart, err = env.service.AddCartItem(c, user.ID, request.AddCartItem{
		ProductId: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, 5, cart.CartItems[0].Quantity)
	assert.True(t, price.Mul(decimal.NewFromInt(5)).Equal(cart.TotalPrice))
	assert.True(t, price.Mul(decimal.NewFromInt(5)).Equal(cart.CartItems[0].Subtotal))
}

func TestAddCartItemUnlistedProduct(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	product := seedProduct(t, c, env, decimal.RequireFromString("25.50"), false)

	_, err := env.service.AddCartItem(c, user.ID, request.AddCartItem{
		ProductId: product.ID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, commonErrors.ErrProductUnlisted)
}

func TestFindCartByUserIdEmpty(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)

	cart, err := env.service.FindCartByUserId(c, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
	assert.True(t, cart.TotalPrice.IsZero())
}

func TestUpdateCartItemQuantity(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	price := decimal.RequireFromString("10.00")
	product := seedProduct(t, c, env, price, true)

	_, err := env.service.AddCartItem(c, user.ID, request.AddCartItem{
		ProductId: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	cart, err := env.service.UpdateCartItemQuantity(c, user.ID, request.UpdateCartItemQuantity{
		ProductId: product.ID,
		Quantity:  7,
	})
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, 7, cart.CartItems[0].Quantity)

	_, err = env.service.UpdateCartItemQuantity(c, user.ID, request.UpdateCartItemQuantity{
		ProductId: uuid.New(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, commonErrors.ErrNotFound)
}

func TestRemoveCartItem(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"), true)

	_, err := env.service.AddCartItem(c, user.ID, request.AddCartItem{
		ProductId: product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	cart, err := env.service.RemoveCartItem(c, user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)

	_, err = env.service.RemoveCartItem(c, user.ID, product.ID)
	assert.ErrorIs(t, err, commonErrors.ErrNotFound)
}

func TestWishlist(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	user := seedUser(t, c, env)
	product := seedProduct(t, c, env, decimal.RequireFromString("10.00"), true)

	wishlist, err := env.service.AddWishlistItem(c, user.ID, request.AddWishlistItem{
		ProductId: product.ID,
	})
	require.NoError(t, err)
	require.Len(t, wishlist.WishlistItems, 1)

	_, err = env.service.AddWishlistItem(c, user.ID, request.AddWishlistItem{
		ProductId: product.ID,
	})
	assert.ErrorIs(t, err, commonErrors.ErrAlreadyInWishlist)

	wishlist, err = env.service.RemoveWishlistItem(c, user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.WishlistItems)
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnspace/furnspace/catalog/pkg/request"
	"github.com/furnspace/furnspace/internal/repository"
)

func seedCategory(t *testing.T, c context.Context, env testEnv, title string) repository.Category {
	t.Helper()
	category, err := env.queries.InsertCategory(c, repository.InsertCategoryParams{
		Title: title,
		Slug:  fmt.Sprintf("%s-%s", title, uuid.NewString()),
	})
	require.NoError(t, err)
	return category
}

func seedProduct(
	t *testing.T,
	c context.Context,
	env testEnv,
	categoryId uuid.UUID,
	name string,
	listed bool,
) repository.Product {
	t.Helper()
	price := repository.NumericFromDecimal(decimal.RequireFromString("149.99"))
	product, err := env.queries.InsertProduct(c, repository.InsertProductParams{
		CategoryID: categoryId,
		Name:       name,
		Price:      price,
		Stock:      10,
	})
	require.NoError(t, err)
	if !listed {
		product, err = env.queries.UpdateProduct(c, repository.UpdateProductParams{
			ID:       product.ID,
			Price:    &price,
			IsListed: false,
		})
		require.NoError(t, err)
	}
	return product
}

func TestFilterProductsByCategories(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer env.teardown(t)

	chairs := seedCategory(t, c, env, "chairs")
	sofas := seedCategory(t, c, env, "sofas")
	tables := seedCategory(t, c, env, "tables")

	armchair := seedProduct(t, c, env, chairs.ID, "Armchair", true)
	seedProduct(t, c, env, chairs.ID, "Broken chair", false)
	sofa := seedProduct(t, c, env, sofas.ID, "Two seater sofa", true)
	seedProduct(t, c, env, tables.ID, "Dining table", true)

	products, err := env.service.FindListedProductsByCategories(c, request.FilterProducts{
		Categories: []uuid.UUID{chairs.ID},
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, armchair.ID, products[0].ID)

	products, err = env.service.FindListedProductsByCategories(c, request.FilterProducts{
		Categories: []uuid.UUID{chairs.ID, sofas.ID},
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	ids := []uuid.UUID{products[0].ID, products[1].ID}
	assert.Contains(t, ids, armchair.ID)
	assert.Contains(t, ids, sofa.ID)

	products, err = env.service.FindListedProductsByCategories(c, request.FilterProducts{
		Categories: []uuid.UUID{uuid.New()},
	})
	require.NoError(t, err)
	assert.Empty(t, products)
}

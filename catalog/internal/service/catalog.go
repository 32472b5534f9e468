package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/furnspace/furnspace/catalog/internal/otel"
	"github.com/furnspace/furnspace/catalog/pkg/request"
	"github.com/furnspace/furnspace/catalog/pkg/response"
	"github.com/furnspace/furnspace/internal/cache"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/repository"
)

const relatedProductLimit = 4

type CatalogService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewCatalogService(queries *repository.Queries, cache *redis.Client) *CatalogService {
	return &CatalogService{queries: queries, cache: cache}
}

func (s *CatalogService) FindListedCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindListedCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindListedCategories").
		Str(log.KeyProcess, "finding listed categories").
		Logger()

	logger.Info().Msg("finding listed categories")
	categories, err := s.queries.FindListedCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding listed categories with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found listed categories count=%d", len(categories))

	resp := make([]response.Category, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, cat.Response())
	}
	return resp, nil
}

func (s *CatalogService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindCategories").
		Str(log.KeyProcess, "finding categories").
		Logger()

	logger.Info().Msg("finding categories")
	categories, err := s.queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found categories count=%d", len(categories))

	resp := make([]response.Category, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, cat.Response())
	}
	return resp, nil
}

func (s *CatalogService) CreateCategory(
	c context.Context,
	param request.CreateCategory,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService CreateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService CreateCategory").
		Str(log.KeyProcess, "inserting category").
		Logger()

	logger.Info().Msg("inserting category")
	category, err := s.queries.InsertCategory(c, repository.InsertCategoryParams{
		Title: param.Title,
		Slug:  param.Slug,
		Image: pgtype.Text{String: param.Image, Valid: param.Image != ""},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting category with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger = logger.With().Str(log.KeyCategoryID, category.ID.String()).Logger()
	logger.Info().Msg("inserted category")

	return category.Response(), nil
}

func (s *CatalogService) UpdateCategory(
	c context.Context,
	param request.UpdateCategory,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService UpdateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService UpdateCategory").
		Str(log.KeyCategoryID, param.ID.String()).
		Str(log.KeyProcess, "updating category").
		Logger()

	logger.Info().Msg("updating category")
	category, err := s.queries.UpdateCategory(c, repository.UpdateCategoryParams{
		ID:       param.ID,
		Title:    param.Title,
		Slug:     param.Slug,
		Image:    pgtype.Text{String: param.Image, Valid: param.Image != ""},
		IsListed: param.IsListed,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating category with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Msg("updated category")

	return category.Response(), nil
}

func (s *CatalogService) DeleteCategory(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CatalogService DeleteCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService DeleteCategory").
		Str(log.KeyCategoryID, id.String()).
		Str(log.KeyProcess, "deleting category").
		Logger()

	logger.Info().Msg("deleting category")
	deleted, err := s.queries.DeleteCategory(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting category with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf("failed deleting category with error=%w", commonErrors.ErrNotFound)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted category")

	return nil
}

func (s *CatalogService) FindListedProducts(
	c context.Context,
	param request.FindProducts,
) (response.ProductPage, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindListedProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindListedProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding listed products").Logger()
	logger.Info().Msg("finding listed products")
	products, err := s.queries.FindListedProducts(c, repository.FindListedProductsParams{
		Limit:  param.PerPage,
		Offset: (param.Page - 1) * param.PerPage,
	})
	if err != nil {
		err = fmt.Errorf("failed finding listed products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductPage{}, err
	}
	logger.Info().Msgf("found listed products count=%d", len(products))

	logger = logger.With().Str(log.KeyProcess, "counting listed products").Logger()
	logger.Info().Msg("counting listed products")
	total, err := s.queries.CountListedProducts(c)
	if err != nil {
		err = fmt.Errorf("failed counting listed products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductPage{}, err
	}
	logger.Info().Msgf("counted listed products total=%d", total)

	page := response.ProductPage{
		Products: make([]response.Product, 0, len(products)),
		Page:     param.Page,
		PerPage:  param.PerPage,
		Total:    total,
	}
	for _, product := range products {
		page.Products = append(page.Products, product.Response())
	}
	return page, nil
}

func (s *CatalogService) FindListedProductsByCategories(
	c context.Context,
	param request.FilterProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindListedProductsByCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindListedProductsByCategories").
		Str(log.KeyProcess, "finding products by categories").
		Logger()

	logger.Info().Msgf("finding products by categories count=%d", len(param.Categories))
	products, err := s.queries.FindProductsByCategories(c, param.Categories)
	if err != nil {
		err = fmt.Errorf("failed finding products by categories with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found products by categories count=%d", len(products))

	resp := make([]response.Product, 0, len(products))
	for _, product := range products {
		resp = append(resp, product.Response())
	}
	return resp, nil
}

func (s *CatalogService) FindProductDetail(
	c context.Context,
	id uuid.UUID,
) (response.ProductDetail, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductDetail")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KeyProduct, id.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProductDetail").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Info().Msg("finding product in cache")
	product := response.Product{}
	jsonCache, err := s.cache.JSONGet(c, cacheKey, "$").Result()
	if err != nil || jsonCache == "" {
		if err != nil {
			err = fmt.Errorf("failed finding product in cache with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}

		logger = logger.With().Str(log.KeyProcess, "finding product in db").Logger()
		logger.Info().Msg("finding product in db")
		row, err := s.queries.FindProductById(c, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = commonErrors.ErrNotFound
			}
			err = fmt.Errorf("failed finding product in db with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.ProductDetail{}, err
		}
		logger.Info().Msg("found product in db")

		if !row.IsListed {
			err = fmt.Errorf("failed finding product with error=%w", commonErrors.ErrProductUnlisted)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.ProductDetail{}, err
		}
		product = row.Response()

		logger = logger.With().Str(log.KeyProcess, "inserting product in cache").Logger()
		logger.Info().Msg("inserting product in cache")
		err = s.cache.JSONSet(c, cacheKey, "$", product).Err()
		if err != nil {
			err = fmt.Errorf("failed inserting product in cache with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		} else {
			logger.Info().Msg("inserted product in cache")
		}
	} else {
		cached := []response.Product{}
		err = json.Unmarshal([]byte(jsonCache), &cached)
		if err != nil || len(cached) == 0 {
			err = fmt.Errorf("failed unmarshaling cached product with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.ProductDetail{}, err
		}
		product = cached[0]
		logger.Info().Msg("found product in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding related products").Logger()
	logger.Info().Msg("finding related products")
	related, err := s.queries.FindRelatedProducts(c, repository.FindRelatedProductsParams{
		CategoryID: product.CategoryID,
		ExcludeID:  product.ID,
		Limit:      relatedProductLimit,
	})
	if err != nil {
		err = fmt.Errorf("failed finding related products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductDetail{}, err
	}
	logger.Info().Msgf("found related products count=%d", len(related))

	detail := response.ProductDetail{
		Product: product,
		Related: make([]response.Product, 0, len(related)),
	}
	for _, p := range related {
		detail.Related = append(detail.Related, p.Response())
	}
	return detail, nil
}

func (s *CatalogService) FindProducts(
	c context.Context,
	param request.FindProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProducts").
		Str(log.KeyProcess, "finding products").
		Logger()

	logger.Info().Msg("finding products")
	products, err := s.queries.FindProducts(c, repository.FindProductsParams{
		Limit:  param.PerPage,
		Offset: (param.Page - 1) * param.PerPage,
	})
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found products count=%d", len(products))

	resp := make([]response.Product, 0, len(products))
	for _, product := range products {
		resp = append(resp, product.Response())
	}
	return resp, nil
}

func (s *CatalogService) CreateProduct(
	c context.Context,
	param request.CreateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService CreateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService CreateProduct").
		Str(log.KeyCategoryID, param.CategoryId.String()).
		Str(log.KeyProcess, "inserting product").
		Logger()

	logger.Info().Msg("inserting product")
	product, err := s.queries.InsertProduct(c, repository.InsertProductParams{
		CategoryID:  param.CategoryId,
		Name:        param.Name,
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Price:       repository.NumericFromDecimal(param.Price),
		Stock:       param.Stock,
		Image:       pgtype.Text{String: param.Image, Valid: param.Image != ""},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(log.KeyProductID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product")

	return product.Response(), nil
}

func (s *CatalogService) UpdateProduct(
	c context.Context,
	param request.UpdateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService UpdateProduct")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KeyProduct, param.ID.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService UpdateProduct").
		Str(log.KeyProductID, param.ID.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Info().Msg("updating product")
	arg := repository.UpdateProductParams{
		ID:          param.ID,
		CategoryID:  param.CategoryId,
		Name:        param.Name,
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Stock:       param.Stock,
		Image:       pgtype.Text{String: param.Image, Valid: param.Image != ""},
		IsListed:    param.IsListed,
	}
	if param.Price != nil {
		price := repository.NumericFromDecimal(*param.Price)
		arg.Price = &price
	}
	product, err := s.queries.UpdateProduct(c, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("updated product")

	logger = logger.With().Str(log.KeyProcess, "invalidating product cache").Logger()
	logger.Info().Msg("invalidating product cache")
	err = s.cache.JSONDel(c, cacheKey, "$").Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating product cache with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		logger.Info().Msg("invalidated product cache")
	}

	return product.Response(), nil
}

func (s *CatalogService) DeleteProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CatalogService DeleteProduct")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KeyProduct, id.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService DeleteProduct").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting product").Logger()
	logger.Info().Msg("deleting product")
	deleted, err := s.queries.DeleteProduct(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf("failed deleting product with error=%w", commonErrors.ErrNotFound)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted product")

	logger = logger.With().Str(log.KeyProcess, "invalidating product cache").Logger()
	logger.Info().Msg("invalidating product cache")
	err = s.cache.JSONDel(c, cacheKey, "$").Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating product cache with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		logger.Info().Msg("invalidated product cache")
	}

	return nil
}

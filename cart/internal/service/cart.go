package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/furnspace/furnspace/cart/internal/otel"
	"github.com/furnspace/furnspace/cart/pkg/request"
	"github.com/furnspace/furnspace/cart/pkg/response"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/repository"
)

type CartService struct {
	queries *repository.Queries
}

func NewCartService(queries *repository.Queries) *CartService {
	return &CartService{queries: queries}
}

func (s *CartService) cartResponse(
	c context.Context,
	cart repository.Cart,
) (response.Cart, error) {
	items, err := s.queries.FindCartItems(c, cart.ID)
	if err != nil {
		return response.Cart{}, err
	}
	resp := response.Cart{
		ID:         cart.ID,
		UserId:     cart.UserID,
		CartItems:  make([]response.CartItem, 0, len(items)),
		TotalPrice: decimal.Zero,
		CreatedAt:  cart.CreatedAt.Time,
		UpdatedAt:  cart.UpdatedAt.Time,
	}
	for _, item := range items {
		mapped := item.Response()
		resp.CartItems = append(resp.CartItems, mapped)
		resp.TotalPrice = resp.TotalPrice.Add(mapped.Subtotal)
	}
	return resp, nil
}

func (s *CartService) FindCartByUserId(
	c context.Context,
	userId uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCartByUserId").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("cart not found, returning empty cart")
			return response.Cart{
				UserId:     userId,
				CartItems:  []response.CartItem{},
				TotalPrice: decimal.Zero,
			}, nil
		}
		err = fmt.Errorf("failed finding cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	resp, err := s.cartResponse(c, cart)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found cart items count=%d", len(resp.CartItems))

	return resp, nil
}

func (s *CartService) AddCartItem(
	c context.Context,
	userId uuid.UUID,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.queries.FindProductById(c, param.ProductId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if !product.IsListed {
		err = fmt.Errorf("failed adding cart item with error=%w", commonErrors.ErrProductUnlisted)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "upserting cart").Logger()
	logger.Info().Msg("upserting cart")
	cart, err := s.queries.UpsertCart(c, userId)
	if err != nil {
		err = fmt.Errorf("failed upserting cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("upserted cart")

	logger = logger.With().Str(log.KeyProcess, "upserting cart item").Logger()
	logger.Info().Msg("upserting cart item")
	_, err = s.queries.UpsertCartItem(c, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		ProductID: param.ProductId,
		Quantity:  param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed upserting cart item with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("upserted cart item")

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	resp, err := s.cartResponse(c, cart)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found cart items count=%d", len(resp.CartItems))

	return resp, nil
}

func (s *CartService) UpdateCartItemQuantity(
	c context.Context,
	userId uuid.UUID,
	param request.UpdateCartItemQuantity,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItemQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartItemQuantity").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(log.KeyProcess, "updating cart item quantity").Logger()
	logger.Info().Msg("updating cart item quantity")
	_, err = s.queries.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
		CartID:    cart.ID,
		ProductID: param.ProductId,
		Quantity:  param.Quantity,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating cart item quantity with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("updated cart item quantity")

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	resp, err := s.cartResponse(c, cart)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found cart items count=%d", len(resp.CartItems))

	return resp, nil
}

func (s *CartService) RemoveCartItem(
	c context.Context,
	userId uuid.UUID,
	productId uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, productId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(log.KeyProcess, "removing cart item").Logger()
	logger.Info().Msg("removing cart item")
	deleted, err := s.queries.DeleteCartItem(c, repository.DeleteCartItemParams{
		CartID:    cart.ID,
		ProductID: productId,
	})
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if deleted == 0 {
		err = fmt.Errorf("failed removing cart item with error=%w", commonErrors.ErrNotFound)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("removed cart item")

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	resp, err := s.cartResponse(c, cart)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found cart items count=%d", len(resp.CartItems))

	return resp, nil
}

func (s *CartService) FindWishlistByUserId(
	c context.Context,
	userId uuid.UUID,
) (response.Wishlist, error) {
	c, span := otel.Tracer.Start(c, "CartService FindWishlistByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindWishlistByUserId").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding wishlist").Logger()
	logger.Info().Msg("finding wishlist")
	wishlist, err := s.queries.FindWishlistByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("wishlist not found, returning empty wishlist")
			return response.Wishlist{
				UserId:        userId,
				WishlistItems: []response.WishlistItem{},
			}, nil
		}
		err = fmt.Errorf("failed finding wishlist with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("found wishlist")

	logger = logger.With().Str(log.KeyProcess, "finding wishlist items").Logger()
	logger.Info().Msg("finding wishlist items")
	items, err := s.queries.FindWishlistItems(c, wishlist.ID)
	if err != nil {
		err = fmt.Errorf("failed finding wishlist items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msgf("found wishlist items count=%d", len(items))

	resp := response.Wishlist{
		ID:            wishlist.ID,
		UserId:        wishlist.UserID,
		WishlistItems: make([]response.WishlistItem, 0, len(items)),
	}
	for _, item := range items {
		resp.WishlistItems = append(resp.WishlistItems, item.Response())
	}
	return resp, nil
}

func (s *CartService) AddWishlistItem(
	c context.Context,
	userId uuid.UUID,
	param request.AddWishlistItem,
) (response.Wishlist, error) {
	c, span := otel.Tracer.Start(c, "CartService AddWishlistItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddWishlistItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.queries.FindProductById(c, param.ProductId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	if !product.IsListed {
		err = fmt.Errorf("failed adding wishlist item with error=%w", commonErrors.ErrProductUnlisted)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "upserting wishlist").Logger()
	logger.Info().Msg("upserting wishlist")
	wishlist, err := s.queries.UpsertWishlist(c, userId)
	if err != nil {
		err = fmt.Errorf("failed upserting wishlist with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("upserted wishlist")

	logger = logger.With().Str(log.KeyProcess, "inserting wishlist item").Logger()
	logger.Info().Msg("inserting wishlist item")
	inserted, err := s.queries.InsertWishlistItem(c, repository.InsertWishlistItemParams{
		WishlistID: wishlist.ID,
		ProductID:  param.ProductId,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting wishlist item with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	if inserted == 0 {
		err = fmt.Errorf("failed inserting wishlist item with error=%w", commonErrors.ErrAlreadyInWishlist)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("inserted wishlist item")

	return s.FindWishlistByUserId(c, userId)
}

func (s *CartService) RemoveWishlistItem(
	c context.Context,
	userId uuid.UUID,
	productId uuid.UUID,
) (response.Wishlist, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveWishlistItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveWishlistItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, productId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding wishlist").Logger()
	logger.Info().Msg("finding wishlist")
	wishlist, err := s.queries.FindWishlistByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding wishlist with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("found wishlist")

	logger = logger.With().Str(log.KeyProcess, "removing wishlist item").Logger()
	logger.Info().Msg("removing wishlist item")
	deleted, err := s.queries.DeleteWishlistItem(c, repository.DeleteWishlistItemParams{
		WishlistID: wishlist.ID,
		ProductID:  productId,
	})
	if err != nil {
		err = fmt.Errorf("failed removing wishlist item with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	if deleted == 0 {
		err = fmt.Errorf("failed removing wishlist item with error=%w", commonErrors.ErrNotFound)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Wishlist{}, err
	}
	logger.Info().Msg("removed wishlist item")

	return s.FindWishlistByUserId(c, userId)
}

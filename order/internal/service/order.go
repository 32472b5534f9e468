package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	cartResponse "github.com/furnspace/furnspace/cart/pkg/response"
	"github.com/furnspace/furnspace/internal/cache"
	"github.com/furnspace/furnspace/internal/common/constants"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/repository"
	"github.com/furnspace/furnspace/notification/pkg/message"
	"github.com/furnspace/furnspace/order/internal/otel"
	"github.com/furnspace/furnspace/order/pkg/request"
	"github.com/furnspace/furnspace/order/pkg/response"
)

const (
	checkoutLockTTL  = 30 * time.Second
	deliveryLeadTime = 72 * time.Hour
)

type OrderService struct {
	db      *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewOrderService(
	db *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *OrderService {
	return &OrderService{db: db, queries: queries, cache: cache}
}

func (s *OrderService) orderResponse(
	c context.Context,
	order repository.Order,
) (response.Order, error) {
	items, err := s.queries.FindOrderItems(c, order.ID)
	if err != nil {
		return response.Order{}, err
	}
	return order.Response(items), nil
}

func (s *OrderService) cartForCheckout(
	c context.Context,
	q *repository.Queries,
	userId uuid.UUID,
) (repository.Cart, []repository.FindCartItemsRow, error) {
	cart, err := q.FindCartByUserId(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrEmptyCart
		}
		return repository.Cart{}, nil, err
	}
	items, err := q.FindCartItems(c, cart.ID)
	if err != nil {
		return repository.Cart{}, nil, err
	}
	if len(items) == 0 {
		return repository.Cart{}, nil, commonErrors.ErrEmptyCart
	}
	for _, item := range items {
		if !item.IsListed {
			return repository.Cart{}, nil, commonErrors.ErrProductUnlisted
		}
	}
	return cart, items, nil
}

func (s *OrderService) PrepareCheckout(
	c context.Context,
	userId uuid.UUID,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "OrderService PrepareCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService PrepareCheckout").
		Str(log.KeyUserID, userId.String()).
		Logger()

	checkout := response.Checkout{
		Cart: cartResponse.Cart{
			UserId:     userId,
			CartItems:  []cartResponse.CartItem{},
			TotalPrice: decimal.Zero,
		},
		Wishlist: cartResponse.Wishlist{
			UserId:        userId,
			WishlistItems: []cartResponse.WishlistItem{},
		},
	}

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, userId)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	if err == nil {
		items, err := s.queries.FindCartItems(c, cart.ID)
		if err != nil {
			err = fmt.Errorf("failed finding cart items with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Checkout{}, err
		}
		checkout.Cart.ID = cart.ID
		checkout.Cart.CreatedAt = cart.CreatedAt.Time
		checkout.Cart.UpdatedAt = cart.UpdatedAt.Time
		for _, item := range items {
			mapped := item.Response()
			checkout.Cart.CartItems = append(checkout.Cart.CartItems, mapped)
			checkout.Cart.TotalPrice = checkout.Cart.TotalPrice.Add(mapped.Subtotal)
		}
		logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
		logger.Info().Msgf("found cart with items count=%d", len(items))
	} else {
		logger.Info().Msg("no cart yet, returning empty cart")
	}

	logger = logger.With().Str(log.KeyProcess, "finding wishlist").Logger()
	logger.Info().Msg("finding wishlist")
	wishlist, err := s.queries.FindWishlistByUserId(c, userId)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding wishlist with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	if err == nil {
		items, err := s.queries.FindWishlistItems(c, wishlist.ID)
		if err != nil {
			err = fmt.Errorf("failed finding wishlist items with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Checkout{}, err
		}
		checkout.Wishlist.ID = wishlist.ID
		for _, item := range items {
			checkout.Wishlist.WishlistItems = append(checkout.Wishlist.WishlistItems, item.Response())
		}
		logger.Info().Msgf("found wishlist with items count=%d", len(items))
	} else {
		logger.Info().Msg("no wishlist yet, returning empty wishlist")
	}

	logger = logger.With().Str(log.KeyProcess, "finding addresses").Logger()
	logger.Info().Msg("finding addresses")
	addresses, err := s.queries.FindAddressesByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding addresses with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	checkout.Addresses = make([]response.Address, 0, len(addresses))
	for _, address := range addresses {
		checkout.Addresses = append(checkout.Addresses, address.Response())
	}
	logger.Info().Msgf("found addresses count=%d", len(addresses))

	return checkout, nil
}

func (s *OrderService) PlaceOrder(
	c context.Context,
	userId uuid.UUID,
	param request.PlaceOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService PlaceOrder")
	defer span.End()

	lockKey := fmt.Sprintf(cache.KeyCheckoutLock, userId.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService PlaceOrder").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyAddressID, param.AddressId.String()).
		Str(log.KeyCacheKey, lockKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "acquiring checkout lock").Logger()
	logger.Info().Msg("acquiring checkout lock")
	locked, err := s.cache.SetNX(c, lockKey, "1", checkoutLockTTL).Result()
	if err != nil {
		err = fmt.Errorf("failed acquiring checkout lock with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if !locked {
		err = fmt.Errorf("failed acquiring checkout lock with error=%w", commonErrors.ErrCheckoutInProgress)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	defer func() {
		if err := s.cache.Del(context.WithoutCancel(c), lockKey).Err(); err != nil {
			logger.Error().Err(err).Msgf("failed releasing checkout lock with error=%s", err.Error())
		}
	}()
	logger.Info().Msg("acquired checkout lock")

	logger = logger.With().Str(log.KeyProcess, "verifying address").Logger()
	logger.Info().Msg("verifying address")
	address, err := s.queries.FindAddressByIdAndUserId(c, repository.FindAddressByIdAndUserIdParams{
		ID:     param.AddressId,
		UserID: userId,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrAddressRequired
		}
		err = fmt.Errorf("failed verifying address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("verified address")

	logger = logger.With().Str(log.KeyProcess, "beginning transaction").Logger()
	logger.Info().Msg("beginning transaction")
	tx, err := s.db.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed beginning transaction with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	defer func() {
		if err := tx.Rollback(c); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Error().Err(err).Msgf("failed rolling back transaction with error=%s", err.Error())
		}
	}()
	qtx := s.queries.WithTx(tx)
	logger.Info().Msg("began transaction")

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, items, err := s.cartForCheckout(c, qtx, userId)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msgf("found cart with items count=%d", len(items))

	logger = logger.With().Str(log.KeyProcess, "calculating total price").Logger()
	logger.Info().Msg("calculating total price")
	totalPrice := decimal.Zero
	for _, item := range items {
		price := repository.DecimalFromNumeric(item.Price)
		totalPrice = totalPrice.Add(price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	logger = logger.With().Str(log.KeyTotalPrice, totalPrice.String()).Logger()
	logger.Info().Msgf("calculated total price=%s", totalPrice.String())

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	order, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		UserID:        userId,
		AddressID:     address.ID,
		PaymentMethod: param.PaymentMethod,
		TotalPrice:    repository.NumericFromDecimal(totalPrice),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("inserting order items")
	args := make([]repository.InsertOrderItemParams, len(items))
	for i, item := range items {
		args[i] = repository.InsertOrderItemParams{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	inserted, err := qtx.InsertOrderItems(c, args)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("inserted order items count=%d", inserted)

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	cleared, err := qtx.ClearCartItems(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed clearing cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("cleared cart items count=%d", cleared)

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("committed transaction")

	logger = logger.With().Str(log.KeyProcess, "publishing order created email").Logger()
	logger.Info().Msg("publishing order created email")
	span.AddEvent("publishing order created email")
	user, err := s.queries.FindUserById(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding user for order created email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		msgJson, err := json.Marshal(message.OrderCreatedEmail{
			Name:       user.Name,
			Email:      user.Email,
			TotalPrice: totalPrice,
			OrderId:    order.ID,
		})
		if err != nil {
			err = fmt.Errorf("failed marshaling order created email with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		} else if err := s.cache.Publish(c, constants.ChannelEmailOrderCreated, msgJson).Err(); err != nil {
			err = fmt.Errorf("failed publishing order created email with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		} else {
			logger.Info().Msg("published order created email")
			span.AddEvent("published order created email")
		}
	}

	logger = logger.With().Str(log.KeyProcess, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	resp, err := s.orderResponse(c, order)
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("mapped order")

	return resp, nil
}

func (s *OrderService) GetOrderConfirmation(
	c context.Context,
	userId uuid.UUID,
	orderId uuid.UUID,
) (response.Confirmation, error) {
	c, span := otel.Tracer.Start(c, "OrderService GetOrderConfirmation")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService GetOrderConfirmation").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyOrderID, orderId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderByIdAndUserId(c, repository.FindOrderByIdAndUserIdParams{
		ID:     orderId,
		UserID: userId,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Confirmation{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "finding address").Logger()
	logger.Info().Msg("finding address")
	address, err := s.queries.FindAddressById(c, order.AddressID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Confirmation{}, err
	}
	logger.Info().Msg("found address")

	logger = logger.With().Str(log.KeyProcess, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	orderResp, err := s.orderResponse(c, order)
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Confirmation{}, err
	}
	logger.Info().Msg("mapped order")

	return response.Confirmation{
		Order:        orderResp,
		Address:      address.Response(),
		DeliveryDate: order.CreatedAt.Time.Add(deliveryLeadTime),
	}, nil
}

func (s *OrderService) FindOrdersByUserId(
	c context.Context,
	userId uuid.UUID,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrdersByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrdersByUserId").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProcess, "finding orders").
		Logger()

	logger.Info().Msg("finding orders")
	orders, err := s.queries.FindOrdersByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found orders count=%d", len(orders))

	resp := make([]response.Order, 0, len(orders))
	for _, order := range orders {
		mapped, err := s.orderResponse(c, order)
		if err != nil {
			err = fmt.Errorf("failed mapping order with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		resp = append(resp, mapped)
	}
	return resp, nil
}

func (s *OrderService) FindOrders(
	c context.Context,
	param request.FindOrders,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Str(log.KeyProcess, "finding orders").
		Logger()

	logger.Info().Msg("finding orders")
	orders, err := s.queries.FindOrders(c, repository.FindOrdersParams{
		Limit:  param.PerPage,
		Offset: (param.Page - 1) * param.PerPage,
	})
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found orders count=%d", len(orders))

	resp := make([]response.Order, 0, len(orders))
	for _, order := range orders {
		mapped, err := s.orderResponse(c, order)
		if err != nil {
			err = fmt.Errorf("failed mapping order with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		resp = append(resp, mapped)
	}
	return resp, nil
}

func (s *OrderService) CancelOrder(
	c context.Context,
	userId uuid.UUID,
	orderId uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService CancelOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CancelOrder").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyOrderID, orderId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderByIdAndUserId(c, repository.FindOrderByIdAndUserIdParams{
		ID:     orderId,
		UserID: userId,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderStatus, string(order.OrderStatus)).Logger()
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "cancelling order").Logger()
	logger.Info().Msg("cancelling order")
	updated, err := s.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:          order.ID,
		OrderStatus: repository.OrderStatusCancelled,
	})
	if err != nil {
		err = fmt.Errorf("failed cancelling order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("cancelled order")

	return s.orderResponse(c, updated)
}

func (s *OrderService) SetOrderStatus(
	c context.Context,
	param request.SetOrderStatus,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService SetOrderStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService SetOrderStatus").
		Str(log.KeyOrderID, param.OrderId.String()).
		Str(log.KeyOrderStatus, param.OrderStatus).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating order status").Logger()
	logger.Info().Msg("validating order status")
	status := repository.OrderStatus(param.OrderStatus)
	if !status.Valid() {
		err := fmt.Errorf("failed validating order status with error=%w", commonErrors.ErrInvalidStatus)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("validated order status")

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderById(c, param.OrderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "checking status transition").Logger()
	logger.Info().Msgf("checking status transition from=%s to=%s", order.OrderStatus, status)
	if !CanTransition(order.OrderStatus, status) {
		err = fmt.Errorf("failed checking status transition with error=%w", commonErrors.ErrForbiddenTransition)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("checked status transition")

	logger = logger.With().Str(log.KeyProcess, "updating order status").Logger()
	logger.Info().Msg("updating order status")
	updated, err := s.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:          order.ID,
		OrderStatus: status,
	})
	if err != nil {
		err = fmt.Errorf("failed updating order status with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("updated order status")

	return s.orderResponse(c, updated)
}

func (s *OrderService) SetPaymentStatus(
	c context.Context,
	param request.SetPaymentStatus,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService SetPaymentStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService SetPaymentStatus").
		Str(log.KeyOrderID, param.OrderId.String()).
		Str(log.KeyPaymentStatus, param.PaymentStatus).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating payment status").Logger()
	logger.Info().Msg("validating payment status")
	status := repository.PaymentStatus(param.PaymentStatus)
	if !status.Valid() {
		err := fmt.Errorf("failed validating payment status with error=%w", commonErrors.ErrInvalidStatus)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("validated payment status")

	logger = logger.With().Str(log.KeyProcess, "updating payment status").Logger()
	logger.Info().Msg("updating payment status")
	updated, err := s.queries.UpdatePaymentStatus(c, repository.UpdatePaymentStatusParams{
		ID:            param.OrderId,
		PaymentStatus: status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating payment status with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("updated payment status")

	return s.orderResponse(c, updated)
}

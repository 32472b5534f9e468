package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/furnspace/furnspace/internal/common"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/common/response"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/middleware"
	"github.com/furnspace/furnspace/order/internal/otel"
	"github.com/furnspace/furnspace/order/internal/service"
	"github.com/furnspace/furnspace/order/pkg/request"
)

type OrderController struct {
	service *service.OrderService
}

func AttachOrderController(
	router *mux.Router,
	service *service.OrderService,
	cfg config.Application,
) {
	controller := OrderController{service: service}

	orders := router.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.Auth(cfg))
	orders.HandleFunc("", controller.FindOrders).Methods(http.MethodGet)
	orders.HandleFunc("/checkout", controller.PrepareCheckout).Methods(http.MethodGet)
	orders.HandleFunc("/checkout", controller.PlaceOrder).Methods(http.MethodPost)
	orders.HandleFunc("/{orderId}/confirmation", controller.GetOrderConfirmation).
		Methods(http.MethodGet)
	orders.HandleFunc("/{orderId}/cancel", controller.CancelOrder).Methods(http.MethodPost)

	addresses := router.PathPrefix("/addresses").Subrouter()
	addresses.Use(middleware.Auth(cfg))
	addresses.HandleFunc("", controller.FindAddresses).Methods(http.MethodGet)
	addresses.HandleFunc("", controller.CreateAddress).Methods(http.MethodPost)
	addresses.HandleFunc("/{addressId}", controller.UpdateAddress).Methods(http.MethodPut)
	addresses.HandleFunc("/{addressId}", controller.DeleteAddress).Methods(http.MethodDelete)

	admin := router.PathPrefix("/admin/orders").Subrouter()
	admin.Use(middleware.Auth(cfg), middleware.AdminOnly)
	admin.HandleFunc("", controller.FindAllOrders).Methods(http.MethodGet)
	admin.HandleFunc("/{orderId}/status", controller.SetOrderStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/{orderId}/payment-status", controller.SetPaymentStatus).
		Methods(http.MethodPatch)
}

func paginationFromQuery(r *http.Request) request.FindOrders {
	param := request.FindOrders{Page: 1, PerPage: 20}
	if raw := r.URL.Query().Get("page"); raw != "" {
		fmt.Sscanf(raw, "%d", &param.Page)
	}
	if raw := r.URL.Query().Get("perPage"); raw != "" {
		fmt.Sscanf(raw, "%d", &param.PerPage)
	}
	return param
}

func (ct *OrderController) FindOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	orders, err := ct.service.FindOrdersByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found orders")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found orders",
		"data": map[string]interface{}{
			"orders": orders,
		},
	})
}

func (ct *OrderController) PrepareCheckout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController PrepareCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController PrepareCheckout").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "preparing checkout").Logger()
	logger.Info().Msg("preparing checkout")
	c = logger.WithContext(c)
	checkout, err := ct.service.PrepareCheckout(c, userId)
	if err != nil {
		err = fmt.Errorf("failed preparing checkout with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("prepared checkout")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "prepared checkout",
		"data": map[string]interface{}{
			"checkout": checkout,
		},
	})
}

func (ct *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController PlaceOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController PlaceOrder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.PlaceOrder{}
	err = json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "placing order").Logger()
	logger.Info().Msg("placing order")
	c = logger.WithContext(c)
	order, err := ct.service.PlaceOrder(c, userId, param)
	if err != nil {
		err = fmt.Errorf("failed placing order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, commonErrors.ErrCheckoutInProgress):
			statusCode = http.StatusConflict
		case errors.Is(err, commonErrors.ErrAddressRequired):
			statusCode = http.StatusBadRequest
		case errors.Is(err, commonErrors.ErrEmptyCart),
			errors.Is(err, commonErrors.ErrProductUnlisted):
			statusCode = http.StatusUnprocessableEntity
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("placed order")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "order placed",
		"data": map[string]interface{}{
			"order": order,
		},
	})
}

func (ct *OrderController) GetOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController GetOrderConfirmation")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController GetOrderConfirmation").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "validating orderId").Logger()
	logger.Info().Msg("validating orderId")
	pathValues := mux.Vars(r)
	orderId, err := uuid.Parse(pathValues["orderId"])
	if err != nil {
		err = fmt.Errorf("failed validating orderId=%s with error=%w", pathValues["orderId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "orderId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, orderId.String()).Logger()
	logger.Info().Msg("validated orderId")

	logger = logger.With().Str(log.KeyProcess, "getting order confirmation").Logger()
	logger.Info().Msg("getting order confirmation")
	c = logger.WithContext(c)
	confirmation, err := ct.service.GetOrderConfirmation(c, userId, orderId)
	if err != nil {
		err = fmt.Errorf("failed getting order confirmation with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, commonErrors.ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("got order confirmation")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "got order confirmation",
		"data": map[string]interface{}{
			"confirmation": confirmation,
		},
	})
}

func (ct *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController CancelOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController CancelOrder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "validating orderId").Logger()
	logger.Info().Msg("validating orderId")
	pathValues := mux.Vars(r)
	orderId, err := uuid.Parse(pathValues["orderId"])
	if err != nil {
		err = fmt.Errorf("failed validating orderId=%s with error=%w", pathValues["orderId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "orderId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, orderId.String()).Logger()
	logger.Info().Msg("validated orderId")

	logger = logger.With().Str(log.KeyProcess, "cancelling order").Logger()
	logger.Info().Msg("cancelling order")
	c = logger.WithContext(c)
	order, err := ct.service.CancelOrder(c, userId, orderId)
	if err != nil {
		err = fmt.Errorf("failed cancelling order with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, commonErrors.ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("cancelled order")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "order cancelled",
		"data": map[string]interface{}{
			"order": order,
		},
	})
}

func (ct *OrderController) FindAddresses(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindAddresses")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindAddresses").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "finding addresses").Logger()
	logger.Info().Msg("finding addresses")
	c = logger.WithContext(c)
	addresses, err := ct.service.FindAddressesByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding addresses with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found addresses")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found addresses",
		"data": map[string]interface{}{
			"addresses": addresses,
		},
	})
}

func (ct *OrderController) CreateAddress(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController CreateAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController CreateAddress").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateAddress{}
	err = json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "creating address").Logger()
	logger.Info().Msg("creating address")
	c = logger.WithContext(c)
	address, err := ct.service.CreateAddress(c, userId, param)
	if err != nil {
		err = fmt.Errorf("failed creating address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created address")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "address created",
		"data": map[string]interface{}{
			"address": address,
		},
	})
}

func (ct *OrderController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController UpdateAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController UpdateAddress").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "validating addressId").Logger()
	logger.Info().Msg("validating addressId")
	pathValues := mux.Vars(r)
	addressId, err := uuid.Parse(pathValues["addressId"])
	if err != nil {
		err = fmt.Errorf("failed validating addressId=%s with error=%w", pathValues["addressId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "addressId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyAddressID, addressId.String()).Logger()
	logger.Info().Msg("validated addressId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.UpdateAddress{}
	err = json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	param.ID = addressId
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating address").Logger()
	logger.Info().Msg("updating address")
	c = logger.WithContext(c)
	address, err := ct.service.UpdateAddress(c, userId, param)
	if err != nil {
		err = fmt.Errorf("failed updating address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, commonErrors.ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated address")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "address updated",
		"data": map[string]interface{}{
			"address": address,
		},
	})
}

func (ct *OrderController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController DeleteAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController DeleteAddress").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := common.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    commonErrors.ErrNotAuthenticated.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("got userId from jwtToken")

	logger = logger.With().Str(log.KeyProcess, "validating addressId").Logger()
	logger.Info().Msg("validating addressId")
	pathValues := mux.Vars(r)
	addressId, err := uuid.Parse(pathValues["addressId"])
	if err != nil {
		err = fmt.Errorf("failed validating addressId=%s with error=%w", pathValues["addressId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "addressId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyAddressID, addressId.String()).Logger()
	logger.Info().Msg("validated addressId")

	logger = logger.With().Str(log.KeyProcess, "deleting address").Logger()
	logger.Info().Msg("deleting address")
	c = logger.WithContext(c)
	err = ct.service.DeleteAddress(c, userId, addressId)
	if err != nil {
		err = fmt.Errorf("failed deleting address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, commonErrors.ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("deleted address")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "address deleted",
	})
}

func (ct *OrderController) FindAllOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindAllOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindAllOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing pagination").Logger()
	logger.Info().Msg("parsing pagination")
	param := paginationFromQuery(r)
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed parsing pagination with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "pagination is invalid",
		})
		return
	}
	logger.Info().Msg("parsed pagination")

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	orders, err := ct.service.FindOrders(c, param)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found orders")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found orders",
		"data": map[string]interface{}{
			"orders": orders,
		},
	})
}

func (ct *OrderController) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController SetOrderStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController SetOrderStatus").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating orderId").Logger()
	logger.Info().Msg("validating orderId")
	pathValues := mux.Vars(r)
	orderId, err := uuid.Parse(pathValues["orderId"])
	if err != nil {
		err = fmt.Errorf("failed validating orderId=%s with error=%w", pathValues["orderId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "orderId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, orderId.String()).Logger()
	logger.Info().Msg("validated orderId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.SetOrderStatus{}
	err = json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	param.OrderId = orderId
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "setting order status").
		Str(log.KeyOrderStatus, param.OrderStatus).
		Logger()
	logger.Info().Msg("setting order status")
	c = logger.WithContext(c)
	order, err := ct.service.SetOrderStatus(c, param)
	if err != nil {
		err = fmt.Errorf("failed setting order status with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, commonErrors.ErrInvalidStatus):
			statusCode = http.StatusBadRequest
		case errors.Is(err, commonErrors.ErrNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, commonErrors.ErrForbiddenTransition):
			statusCode = http.StatusConflict
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("set order status")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "order status set",
		"data": map[string]interface{}{
			"order": order,
		},
	})
}

func (ct *OrderController) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController SetPaymentStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController SetPaymentStatus").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating orderId").Logger()
	logger.Info().Msg("validating orderId")
	pathValues := mux.Vars(r)
	orderId, err := uuid.Parse(pathValues["orderId"])
	if err != nil {
		err = fmt.Errorf("failed validating orderId=%s with error=%w", pathValues["orderId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "orderId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, orderId.String()).Logger()
	logger.Info().Msg("validated orderId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.SetPaymentStatus{}
	err = json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	param.OrderId = orderId
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "request body is invalid",
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "setting payment status").
		Str(log.KeyPaymentStatus, param.PaymentStatus).
		Logger()
	logger.Info().Msg("setting payment status")
	c = logger.WithContext(c)
	order, err := ct.service.SetPaymentStatus(c, param)
	if err != nil {
		err = fmt.Errorf("failed setting payment status with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, commonErrors.ErrInvalidStatus):
			statusCode = http.StatusBadRequest
		case errors.Is(err, commonErrors.ErrNotFound):
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("set payment status")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "payment status set",
		"data": map[string]interface{}{
			"order": order,
		},
	})
}

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

	"github.com/furnspace/furnspace/catalog/internal/otel"
	"github.com/furnspace/furnspace/catalog/internal/service"
	"github.com/furnspace/furnspace/catalog/pkg/request"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/common/response"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/middleware"
)

type CatalogController struct {
	service *service.CatalogService
}

func AttachCatalogController(
	router *mux.Router,
	service *service.CatalogService,
	cfg config.Application,
) {
	controller := CatalogController{service: service}

	router.HandleFunc("/categories", controller.FindListedCategories).Methods(http.MethodGet)
	router.HandleFunc("/products", controller.FindListedProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/filter", controller.FilterProducts).Methods(http.MethodPost)
	router.HandleFunc("/products/{productId}", controller.FindProductDetail).
		Methods(http.MethodGet)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg), middleware.AdminOnly)
	admin.HandleFunc("/categories", controller.FindCategories).Methods(http.MethodGet)
	admin.HandleFunc("/categories", controller.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{categoryId}", controller.UpdateCategory).
		Methods(http.MethodPut)
	admin.HandleFunc("/categories/{categoryId}", controller.DeleteCategory).
		Methods(http.MethodDelete)
	admin.HandleFunc("/products", controller.FindProducts).Methods(http.MethodGet)
	admin.HandleFunc("/products", controller.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{productId}", controller.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{productId}", controller.DeleteProduct).
		Methods(http.MethodDelete)
}

func paginationFromQuery(r *http.Request) request.FindProducts {
	param := request.FindProducts{Page: 1, PerPage: 20}
	if raw := r.URL.Query().Get("page"); raw != "" {
		fmt.Sscanf(raw, "%d", &param.Page)
	}
	if raw := r.URL.Query().Get("perPage"); raw != "" {
		fmt.Sscanf(raw, "%d", &param.PerPage)
	}
	return param
}

func (ct *CatalogController) FindListedCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindListedCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindListedCategories").
		Str(log.KeyProcess, "finding categories").
		Logger()

	logger.Info().Msg("finding categories")
	c = logger.WithContext(c)
	categories, err := ct.service.FindListedCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found categories")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found categories",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (ct *CatalogController) FindListedProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindListedProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindListedProducts").
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

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	page, err := ct.service.FindListedProducts(c, param)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found products")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found products",
		"data": map[string]interface{}{
			"products": page,
		},
	})
}

func (ct *CatalogController) FilterProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FilterProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FilterProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.FilterProducts{}
	err := json.NewDecoder(r.Body).Decode(&param)
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

	logger = logger.With().Str(log.KeyProcess, "filtering products").Logger()
	logger.Info().Msg("filtering products")
	c = logger.WithContext(c)
	products, err := ct.service.FindListedProductsByCategories(c, param)
	if err != nil {
		err = fmt.Errorf("failed filtering products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("filtered products")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "filtered products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (ct *CatalogController) FindProductDetail(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProductDetail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProductDetail").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating productId").Logger()
	logger.Info().Msg("validating productId")
	pathValues := mux.Vars(r)
	productId, err := uuid.Parse(pathValues["productId"])
	if err != nil {
		err = fmt.Errorf("failed validating productId=%s with error=%w", pathValues["productId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "productId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyProductID, productId.String()).Logger()
	logger.Info().Msg("validated productId")

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	detail, err := ct.service.FindProductDetail(c, productId)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, commonErrors.ErrNotFound) ||
			errors.Is(err, commonErrors.ErrProductUnlisted) {
			statusCode = http.StatusNotFound
		}
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found product")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found product",
		"data": map[string]interface{}{
			"product": detail,
		},
	})
}

func (ct *CatalogController) FindCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindCategories").
		Str(log.KeyProcess, "finding categories").
		Logger()

	logger.Info().Msg("finding categories")
	c = logger.WithContext(c)
	categories, err := ct.service.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found categories")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found categories",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (ct *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController CreateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController CreateCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateCategory{}
	err := json.NewDecoder(r.Body).Decode(&param)
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

	logger = logger.With().Str(log.KeyProcess, "creating category").Logger()
	logger.Info().Msg("creating category")
	c = logger.WithContext(c)
	category, err := ct.service.CreateCategory(c, param)
	if err != nil {
		err = fmt.Errorf("failed creating category with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created category")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "category created",
		"data": map[string]interface{}{
			"category": category,
		},
	})
}

func (ct *CatalogController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController UpdateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController UpdateCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating categoryId").Logger()
	logger.Info().Msg("validating categoryId")
	pathValues := mux.Vars(r)
	categoryId, err := uuid.Parse(pathValues["categoryId"])
	if err != nil {
		err = fmt.Errorf("failed validating categoryId=%s with error=%w", pathValues["categoryId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "categoryId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyCategoryID, categoryId.String()).Logger()
	logger.Info().Msg("validated categoryId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.UpdateCategory{}
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
	param.ID = categoryId
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating category").Logger()
	logger.Info().Msg("updating category")
	c = logger.WithContext(c)
	category, err := ct.service.UpdateCategory(c, param)
	if err != nil {
		err = fmt.Errorf("failed updating category with error=%w", err)
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
	logger.Info().Msg("updated category")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "category updated",
		"data": map[string]interface{}{
			"category": category,
		},
	})
}

func (ct *CatalogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController DeleteCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController DeleteCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating categoryId").Logger()
	logger.Info().Msg("validating categoryId")
	pathValues := mux.Vars(r)
	categoryId, err := uuid.Parse(pathValues["categoryId"])
	if err != nil {
		err = fmt.Errorf("failed validating categoryId=%s with error=%w", pathValues["categoryId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "categoryId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyCategoryID, categoryId.String()).Logger()
	logger.Info().Msg("validated categoryId")

	logger = logger.With().Str(log.KeyProcess, "deleting category").Logger()
	logger.Info().Msg("deleting category")
	c = logger.WithContext(c)
	err = ct.service.DeleteCategory(c, categoryId)
	if err != nil {
		err = fmt.Errorf("failed deleting category with error=%w", err)
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
	logger.Info().Msg("deleted category")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "category deleted",
	})
}

func (ct *CatalogController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProducts").
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

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := ct.service.FindProducts(c, param)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found products")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (ct *CatalogController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController CreateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController CreateProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateProduct{}
	err := json.NewDecoder(r.Body).Decode(&param)
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

	logger = logger.With().Str(log.KeyProcess, "creating product").Logger()
	logger.Info().Msg("creating product")
	c = logger.WithContext(c)
	product, err := ct.service.CreateProduct(c, param)
	if err != nil {
		err = fmt.Errorf("failed creating product with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created product")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "product created",
		"data": map[string]interface{}{
			"product": product,
		},
	})
}

func (ct *CatalogController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController UpdateProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating productId").Logger()
	logger.Info().Msg("validating productId")
	pathValues := mux.Vars(r)
	productId, err := uuid.Parse(pathValues["productId"])
	if err != nil {
		err = fmt.Errorf("failed validating productId=%s with error=%w", pathValues["productId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "productId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyProductID, productId.String()).Logger()
	logger.Info().Msg("validated productId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.UpdateProduct{}
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
	param.ID = productId
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Info().Msg("updating product")
	c = logger.WithContext(c)
	product, err := ct.service.UpdateProduct(c, param)
	if err != nil {
		err = fmt.Errorf("failed updating product with error=%w", err)
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
	logger.Info().Msg("updated product")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "product updated",
		"data": map[string]interface{}{
			"product": product,
		},
	})
}

func (ct *CatalogController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController DeleteProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController DeleteProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating productId").Logger()
	logger.Info().Msg("validating productId")
	pathValues := mux.Vars(r)
	productId, err := uuid.Parse(pathValues["productId"])
	if err != nil {
		err = fmt.Errorf("failed validating productId=%s with error=%w", pathValues["productId"], err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "productId is invalid",
		})
		return
	}
	logger = logger.With().Str(log.KeyProductID, productId.String()).Logger()
	logger.Info().Msg("validated productId")

	logger = logger.With().Str(log.KeyProcess, "deleting product").Logger()
	logger.Info().Msg("deleting product")
	c = logger.WithContext(c)
	err = ct.service.DeleteProduct(c, productId)
	if err != nil {
		err = fmt.Errorf("failed deleting product with error=%w", err)
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
	logger.Info().Msg("deleted product")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "product deleted",
	})
}

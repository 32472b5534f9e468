package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/furnspace/furnspace/internal/common"
	inErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/common/response"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
)

func Auth(cfg config.Application) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				logger.Error().
					Err(inErrors.ErrEmptyAuth).
					Msg(inErrors.ErrEmptyAuth.Error())
				response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrNotAuthenticated.Error(),
				})
				return
			}

			token := strings.TrimPrefix(authorization, "Bearer ")
			token = strings.TrimPrefix(token, "bearer ")
			claims, err := common.VerifyToken(c, token, cfg)
			if err != nil {
				logger.Error().Err(err).Msg(err.Error())
				response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			c = common.AttachClaimsToContext(c, claims)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := r.Context()
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "middleware AdminOnly").
			Logger()

		claims, err := common.ClaimsFromContext(c)
		if err != nil || !claims.IsAdmin {
			logger.Error().
				Err(inErrors.ErrNotAdmin).
				Msg(inErrors.ErrNotAdmin.Error())
			response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusForbidden,
				"message":    inErrors.ErrNotAdmin.Error(),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

package common

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/furnspace/furnspace/internal/common/constants"
	inErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
)

type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

type jwtClaims struct{}

func AttachClaimsToContext(c context.Context, claims *Claims) context.Context {
	return context.WithValue(c, jwtClaims{}, claims)
}

func ClaimsFromContext(c context.Context) (*Claims, error) {
	claims, ok := c.Value(jwtClaims{}).(*Claims)
	if !ok {
		return nil, inErrors.ErrNotAuthenticated
	}
	return claims, nil
}

func UserIdFromJwtToken(c context.Context) (uuid.UUID, error) {
	claims, err := ClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed parsing subject with error=%w", err)
	}
	return userId, nil
}

func CreateToken(
	c context.Context,
	userId uuid.UUID,
	isAdmin bool,
	cfg config.Application,
) (string, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CreateToken").
		Str(log.KeyUserID, userId.String()).
		Logger()

	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		Claims{
			IsAdmin: isAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Audience:  jwt.ClaimStrings{constants.AudienceUser},
				Issuer:    constants.AppUserService,
				Subject:   userId.String(),
				ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		},
	)

	signedToken, err := token.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}

	return signedToken, nil
}

func VerifyToken(c context.Context, token string, cfg config.Application) (*Claims, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SecretKey), nil
		},
		jwt.WithAudience(constants.AudienceUser),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppUserService),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing with claims with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger = logger.With().Any(log.KeyToken, jwtToken).Logger()
	if !jwtToken.Valid {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return nil, inErrors.ErrTokenInvalid
	}

	return claims, nil
}

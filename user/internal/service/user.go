package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/furnspace/furnspace/internal/common"
	"github.com/furnspace/furnspace/internal/common/constants"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/repository"
	"github.com/furnspace/furnspace/notification/pkg/message"
	"github.com/furnspace/furnspace/user/internal/otel"
	"github.com/furnspace/furnspace/user/pkg/request"
	"github.com/furnspace/furnspace/user/pkg/response"
)

const (
	signupTTL = 10 * time.Minute
	resetTTL  = 15 * time.Minute
)

func signupKey(email string) string {
	return "signup:" + email
}

func resetKey(token string) string {
	return "reset:" + token
}

type pendingSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Otp      string `json:"otp"`
}

type UserService struct {
	queries *repository.Queries
	cache   *redis.Client
	config  config.Application
}

func NewUserService(
	queries *repository.Queries,
	cache *redis.Client,
	config config.Application,
) *UserService {
	return &UserService{queries: queries, cache: cache, config: config}
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *UserService) Register(c context.Context, param request.Register) error {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking existing email").Logger()
	logger.Info().Msg("checking existing email")
	_, err := s.queries.FindUserByEmail(c, param.Email)
	if err == nil {
		err = fmt.Errorf("failed registering email=%s with error=%w", param.Email, commonErrors.ErrEmailTaken)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed checking existing email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("checked existing email")

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	logger.Info().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("hashed password")

	logger = logger.With().Str(log.KeyProcess, "generating otp").Logger()
	logger.Info().Msg("generating otp")
	otp, err := generateOtp()
	if err != nil {
		err = fmt.Errorf("failed generating otp with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("generated otp")

	logger = logger.With().Str(log.KeyProcess, "storing pending signup").Logger()
	logger.Info().Msg("storing pending signup")
	pending := pendingSignup{
		Name:     param.Name,
		Email:    param.Email,
		Phone:    param.Phone,
		Password: string(hashed),
		Otp:      otp,
	}
	pendingJson, err := json.Marshal(pending)
	if err != nil {
		err = fmt.Errorf("failed marshaling pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	err = s.cache.SetEx(c, signupKey(param.Email), pendingJson, signupTTL).Err()
	if err != nil {
		err = fmt.Errorf("failed storing pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("stored pending signup")

	logger = logger.With().Str(log.KeyProcess, "publishing otp email").Logger()
	logger.Info().Msg("publishing otp email")
	span.AddEvent("publishing otp email")
	err = s.publishOtpEmail(c, message.OtpEmail{Name: param.Name, Email: param.Email, Otp: otp})
	if err != nil {
		err = fmt.Errorf("failed publishing otp email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("published otp email")
	span.AddEvent("published otp email")

	return nil
}

func (s *UserService) publishOtpEmail(c context.Context, msg message.OtpEmail) error {
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.cache.Publish(c, constants.ChannelEmailOtp, msgJson).Err()
}

func (s *UserService) VerifyOtp(
	c context.Context,
	param request.VerifyOtp,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService VerifyOtp")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService VerifyOtp").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "consuming pending signup").Logger()
	logger.Info().Msg("consuming pending signup")
	pendingJson, err := s.cache.GetDel(c, signupKey(param.Email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commonErrors.ErrOtpMismatch
		}
		err = fmt.Errorf("failed consuming pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	pending := pendingSignup{}
	err = json.Unmarshal([]byte(pendingJson), &pending)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("consumed pending signup")

	logger = logger.With().Str(log.KeyProcess, "verifying otp").Logger()
	logger.Info().Msg("verifying otp")
	if pending.Otp != param.Otp {
		err = fmt.Errorf("failed verifying otp with error=%w", commonErrors.ErrOtpMismatch)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("verified otp")

	logger = logger.With().Str(log.KeyProcess, "inserting user").Logger()
	logger.Info().Msg("inserting user")
	user, err := s.queries.InsertUser(c, repository.InsertUserParams{
		Name:       pending.Name,
		Email:      pending.Email,
		Phone:      pending.Phone,
		Password:   pending.Password,
		IsVerified: true,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting user with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("inserted user")

	return user.Response(), nil
}

func (s *UserService) ResendOtp(c context.Context, param request.ResendOtp) error {
	c, span := otel.Tracer.Start(c, "UserService ResendOtp")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService ResendOtp").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding pending signup").Logger()
	logger.Info().Msg("finding pending signup")
	pendingJson, err := s.cache.Get(c, signupKey(param.Email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	pending := pendingSignup{}
	err = json.Unmarshal([]byte(pendingJson), &pending)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("found pending signup")

	logger = logger.With().Str(log.KeyProcess, "regenerating otp").Logger()
	logger.Info().Msg("regenerating otp")
	otp, err := generateOtp()
	if err != nil {
		err = fmt.Errorf("failed regenerating otp with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	pending.Otp = otp
	pendingJsonNew, err := json.Marshal(pending)
	if err != nil {
		err = fmt.Errorf("failed marshaling pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	err = s.cache.SetEx(c, signupKey(param.Email), pendingJsonNew, signupTTL).Err()
	if err != nil {
		err = fmt.Errorf("failed storing pending signup with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("regenerated otp")

	logger = logger.With().Str(log.KeyProcess, "publishing otp email").Logger()
	logger.Info().Msg("publishing otp email")
	err = s.publishOtpEmail(c, message.OtpEmail{Name: pending.Name, Email: pending.Email, Otp: otp})
	if err != nil {
		err = fmt.Errorf("failed publishing otp email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("published otp email")

	return nil
}

func (s *UserService) Login(c context.Context, param request.Login) (string, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user by email")
	user, err := s.queries.FindUserByEmail(c, param.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding user by email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("found user by email")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Info().Msg("verifying password")
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password))
	if err != nil {
		err = fmt.Errorf("failed verifying password with error=%w", commonErrors.ErrPasswordMismatch)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("verified password")

	logger = logger.With().Str(log.KeyProcess, "checking user status").Logger()
	logger.Info().Msg("checking user status")
	if !user.IsListed {
		err = fmt.Errorf("failed checking user status with error=%w", commonErrors.ErrUserBanned)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	if !user.IsVerified {
		err = fmt.Errorf("failed checking user status with error=%w", commonErrors.ErrNotAuthenticated)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("checked user status")

	logger = logger.With().Str(log.KeyProcess, "creating token").Logger()
	logger.Info().Msg("creating token")
	token, err := common.CreateToken(c, user.ID, user.IsAdmin, s.config)
	if err != nil {
		err = fmt.Errorf("failed creating token with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("created token")

	return token, nil
}

func (s *UserService) FindUserById(c context.Context, id uuid.UUID) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUserById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindUserById").
		Str(log.KeyUserID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user by id")
	user, err := s.queries.FindUserById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding user by id with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found user by id")

	return user.Response(), nil
}

func (s *UserService) UpdateProfile(
	c context.Context,
	userId uuid.UUID,
	param request.UpdateProfile,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService UpdateProfile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService UpdateProfile").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating user").Logger()
	logger.Info().Msg("updating user")
	user, err := s.queries.UpdateUser(c, repository.UpdateUserParams{
		ID:    userId,
		Name:  param.Name,
		Email: param.Email,
		Phone: param.Phone,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating user with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("updated user")

	return user.Response(), nil
}

func (s *UserService) ForgetPassword(c context.Context, param request.ForgetPassword) error {
	c, span := otel.Tracer.Start(c, "UserService ForgetPassword")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService ForgetPassword").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user by email")
	user, err := s.queries.FindUserByEmail(c, param.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed finding user by email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("found user by email")

	logger = logger.With().Str(log.KeyProcess, "storing reset token").Logger()
	logger.Info().Msg("storing reset token")
	token := uuid.NewString()
	err = s.cache.SetEx(c, resetKey(token), user.ID.String(), resetTTL).Err()
	if err != nil {
		err = fmt.Errorf("failed storing reset token with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("stored reset token")

	logger = logger.With().Str(log.KeyProcess, "publishing reset password email").Logger()
	logger.Info().Msg("publishing reset password email")
	span.AddEvent("publishing reset password email")
	msgJson, err := json.Marshal(message.ResetPasswordEmail{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
	if err != nil {
		err = fmt.Errorf("failed marshaling reset password email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	err = s.cache.Publish(c, constants.ChannelEmailResetPassword, msgJson).Err()
	if err != nil {
		err = fmt.Errorf("failed publishing reset password email with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("published reset password email")
	span.AddEvent("published reset password email")

	return nil
}

func (s *UserService) ResetPassword(c context.Context, param request.ResetPassword) error {
	c, span := otel.Tracer.Start(c, "UserService ResetPassword")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService ResetPassword").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "consuming reset token").Logger()
	logger.Info().Msg("consuming reset token")
	userIdRaw, err := s.cache.GetDel(c, resetKey(param.Token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commonErrors.ErrTokenInvalid
		}
		err = fmt.Errorf("failed consuming reset token with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	userId, err := uuid.Parse(userIdRaw)
	if err != nil {
		err = fmt.Errorf("failed parsing userId from reset token with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msg("consumed reset token")

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	logger.Info().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("hashed password")

	logger = logger.With().Str(log.KeyProcess, "updating password").Logger()
	logger.Info().Msg("updating password")
	_, err = s.queries.UpdateUserPassword(c, repository.UpdateUserPasswordParams{
		ID:       userId,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating password with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("updated password")

	return nil
}

func (s *UserService) FindUsers(
	c context.Context,
	param request.FindUsers,
) (response.UserPage, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUsers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindUsers").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding users").Logger()
	logger.Info().Msg("finding users")
	users, err := s.queries.FindUsers(c, repository.FindUsersParams{
		Limit:  param.PerPage,
		Offset: (param.Page - 1) * param.PerPage,
	})
	if err != nil {
		err = fmt.Errorf("failed finding users with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.UserPage{}, err
	}
	logger.Info().Msgf("found users count=%d", len(users))

	logger = logger.With().Str(log.KeyProcess, "counting users").Logger()
	logger.Info().Msg("counting users")
	total, err := s.queries.CountUsers(c)
	if err != nil {
		err = fmt.Errorf("failed counting users with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.UserPage{}, err
	}
	logger.Info().Msgf("counted users total=%d", total)

	page := response.UserPage{
		Users:   make([]response.User, 0, len(users)),
		Page:    param.Page,
		PerPage: param.PerPage,
		Total:   total,
	}
	for _, user := range users {
		page.Users = append(page.Users, user.Response())
	}
	return page, nil
}

func (s *UserService) SetUserListed(
	c context.Context,
	param request.SetUserListed,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService SetUserListed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService SetUserListed").
		Str(log.KeyUserID, param.UserId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating user listing").Logger()
	logger.Info().Msg("updating user listing")
	user, err := s.queries.SetUserListed(c, repository.SetUserListedParams{
		ID:       param.UserId,
		IsListed: param.IsListed,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating user listing with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("updated user listing")

	return user.Response(), nil
}

func (s *UserService) SendContactMessage(c context.Context, param request.ContactMessage) error {
	c, span := otel.Tracer.Start(c, "UserService SendContactMessage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService SendContactMessage").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "publishing contact message").Logger()
	logger.Info().Msg("publishing contact message")
	span.AddEvent("publishing contact message")
	msgJson, err := json.Marshal(message.ContactMessage{
		Name:    param.Name,
		Email:   param.Email,
		Phone:   param.Phone,
		Subject: param.Subject,
		Message: param.Message,
	})
	if err != nil {
		err = fmt.Errorf("failed marshaling contact message with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	err = s.cache.Publish(c, constants.ChannelEmailContact, msgJson).Err()
	if err != nil {
		err = fmt.Errorf("failed publishing contact message with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("published contact message")
	span.AddEvent("published contact message")

	return nil
}

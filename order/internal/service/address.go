package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/repository"
	"github.com/furnspace/furnspace/order/internal/otel"
	"github.com/furnspace/furnspace/order/pkg/request"
	"github.com/furnspace/furnspace/order/pkg/response"
)

func (s *OrderService) CreateAddress(
	c context.Context,
	userId uuid.UUID,
	param request.CreateAddress,
) (response.Address, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateAddress").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProcess, "inserting address").
		Logger()

	logger.Info().Msg("inserting address")
	address, err := s.queries.InsertAddress(c, repository.InsertAddressParams{
		UserID:    userId,
		FullName:  param.FullName,
		Street:    param.Street,
		Apartment: pgtype.Text{String: param.Apartment, Valid: param.Apartment != ""},
		Town:      param.Town,
		City:      param.City,
		State:     param.State,
		Postcode:  param.Postcode,
		Phone:     param.Phone,
		Email:     param.Email,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Address{}, err
	}
	logger = logger.With().Str(log.KeyAddressID, address.ID.String()).Logger()
	logger.Info().Msg("inserted address")

	return address.Response(), nil
}

func (s *OrderService) FindAddressesByUserId(
	c context.Context,
	userId uuid.UUID,
) ([]response.Address, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindAddressesByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindAddressesByUserId").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProcess, "finding addresses").
		Logger()

	logger.Info().Msg("finding addresses")
	addresses, err := s.queries.FindAddressesByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding addresses with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found addresses count=%d", len(addresses))

	resp := make([]response.Address, 0, len(addresses))
	for _, address := range addresses {
		resp = append(resp, address.Response())
	}
	return resp, nil
}

func (s *OrderService) UpdateAddress(
	c context.Context,
	userId uuid.UUID,
	param request.UpdateAddress,
) (response.Address, error) {
	c, span := otel.Tracer.Start(c, "OrderService UpdateAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService UpdateAddress").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyAddressID, param.ID.String()).
		Str(log.KeyProcess, "updating address").
		Logger()

	logger.Info().Msg("updating address")
	address, err := s.queries.UpdateAddress(c, repository.UpdateAddressParams{
		ID:        param.ID,
		UserID:    userId,
		FullName:  param.FullName,
		Street:    param.Street,
		Apartment: pgtype.Text{String: param.Apartment, Valid: param.Apartment != ""},
		Town:      param.Town,
		City:      param.City,
		State:     param.State,
		Postcode:  param.Postcode,
		Phone:     param.Phone,
		Email:     param.Email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = commonErrors.ErrNotFound
		}
		err = fmt.Errorf("failed updating address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Address{}, err
	}
	logger.Info().Msg("updated address")

	return address.Response(), nil
}

func (s *OrderService) DeleteAddress(
	c context.Context,
	userId uuid.UUID,
	addressId uuid.UUID,
) error {
	c, span := otel.Tracer.Start(c, "OrderService DeleteAddress")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService DeleteAddress").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyAddressID, addressId.String()).
		Str(log.KeyProcess, "deleting address").
		Logger()

	logger.Info().Msg("deleting address")
	deleted, err := s.queries.DeleteAddress(c, repository.DeleteAddressParams{
		ID:     addressId,
		UserID: userId,
	})
	if err != nil {
		err = fmt.Errorf("failed deleting address with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf("failed deleting address with error=%w", commonErrors.ErrNotFound)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted address")

	return nil
}

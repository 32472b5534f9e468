package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const addressColumns = `id, user_id, full_name, street, apartment, town, city, state, postcode, phone, email, created_at, updated_at`

func scanAddress(row interface{ Scan(dest ...interface{}) error }) (Address, error) {
	var a Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.Street,
		&a.Apartment,
		&a.Town,
		&a.City,
		&a.State,
		&a.Postcode,
		&a.Phone,
		&a.Email,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const insertAddress = `
INSERT INTO addresses (user_id, full_name, street, apartment, town, city, state, postcode, phone, email)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + addressColumns

type InsertAddressParams struct {
	UserID    uuid.UUID
	FullName  string
	Street    string
	Apartment pgtype.Text
	Town      string
	City      string
	State     string
	Postcode  string
	Phone     string
	Email     string
}

func (q *Queries) InsertAddress(c context.Context, arg InsertAddressParams) (Address, error) {
	return scanAddress(q.db.QueryRow(
		c,
		insertAddress,
		arg.UserID,
		arg.FullName,
		arg.Street,
		arg.Apartment,
		arg.Town,
		arg.City,
		arg.State,
		arg.Postcode,
		arg.Phone,
		arg.Email,
	))
}

const findAddressesByUserId = `
SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at`

func (q *Queries) FindAddressesByUserId(c context.Context, userId uuid.UUID) ([]Address, error) {
	rows, err := q.db.Query(c, findAddressesByUserId, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	addresses := []Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

const findAddressById = `
SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

func (q *Queries) FindAddressById(c context.Context, id uuid.UUID) (Address, error) {
	return scanAddress(q.db.QueryRow(c, findAddressById, id))
}

const findAddressByIdAndUserId = `
SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`

type FindAddressByIdAndUserIdParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) FindAddressByIdAndUserId(
	c context.Context,
	arg FindAddressByIdAndUserIdParams,
) (Address, error) {
	return scanAddress(q.db.QueryRow(c, findAddressByIdAndUserId, arg.ID, arg.UserID))
}

const updateAddress = `
UPDATE addresses
SET full_name  = coalesce(nullif($3, ''), full_name),
    street     = coalesce(nullif($4, ''), street),
    apartment  = coalesce($5, apartment),
    town       = coalesce(nullif($6, ''), town),
    city       = coalesce(nullif($7, ''), city),
    state      = coalesce(nullif($8, ''), state),
    postcode   = coalesce(nullif($9, ''), postcode),
    phone      = coalesce(nullif($10, ''), phone),
    email      = coalesce(nullif($11, ''), email),
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + addressColumns

type UpdateAddressParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	Street    string
	Apartment pgtype.Text
	Town      string
	City      string
	State     string
	Postcode  string
	Phone     string
	Email     string
}

func (q *Queries) UpdateAddress(c context.Context, arg UpdateAddressParams) (Address, error) {
	return scanAddress(q.db.QueryRow(
		c,
		updateAddress,
		arg.ID,
		arg.UserID,
		arg.FullName,
		arg.Street,
		arg.Apartment,
		arg.Town,
		arg.City,
		arg.State,
		arg.Postcode,
		arg.Phone,
		arg.Email,
	))
}

const deleteAddress = `
DELETE FROM addresses WHERE id = $1 AND user_id = $2`

type DeleteAddressParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) DeleteAddress(c context.Context, arg DeleteAddressParams) (int64, error) {
	tag, err := q.db.Exec(c, deleteAddress, arg.ID, arg.UserID)
	return tag.RowsAffected(), err
}

package repository

import (
	"context"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, phone, password, is_admin, is_verified, is_listed, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...interface{}) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Password,
		&u.IsAdmin,
		&u.IsVerified,
		&u.IsListed,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const insertUser = `
INSERT INTO users (name, email, phone, password, is_verified)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

type InsertUserParams struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	IsVerified bool
}

func (q *Queries) InsertUser(c context.Context, arg InsertUserParams) (User, error) {
	return scanUser(q.db.QueryRow(
		c,
		insertUser,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Password,
		arg.IsVerified,
	))
}

const findUserByEmail = `
SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(c context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(c, findUserByEmail, email))
}

const findUserById = `
SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserById(c context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRow(c, findUserById, id))
}

const findUsers = `
SELECT ` + userColumns + ` FROM users WHERE is_admin = false ORDER BY created_at DESC LIMIT $1 OFFSET $2`

type FindUsersParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) FindUsers(c context.Context, arg FindUsersParams) ([]User, error) {
	rows, err := q.db.Query(c, findUsers, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const countUsers = `
SELECT count(*) FROM users WHERE is_admin = false`

func (q *Queries) CountUsers(c context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(c, countUsers).Scan(&count)
	return count, err
}

const updateUser = `
UPDATE users
SET name       = coalesce(nullif($2, ''), name),
    email      = coalesce(nullif($3, ''), email),
    phone      = coalesce(nullif($4, ''), phone),
    updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

type UpdateUserParams struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

func (q *Queries) UpdateUser(c context.Context, arg UpdateUserParams) (User, error) {
	return scanUser(q.db.QueryRow(c, updateUser, arg.ID, arg.Name, arg.Email, arg.Phone))
}

const updateUserPassword = `
UPDATE users SET password = $2, updated_at = now() WHERE id = $1
RETURNING ` + userColumns

type UpdateUserPasswordParams struct {
	ID       uuid.UUID
	Password string
}

func (q *Queries) UpdateUserPassword(c context.Context, arg UpdateUserPasswordParams) (User, error) {
	return scanUser(q.db.QueryRow(c, updateUserPassword, arg.ID, arg.Password))
}

const setUserListed = `
UPDATE users SET is_listed = $2, updated_at = now() WHERE id = $1
RETURNING ` + userColumns

type SetUserListedParams struct {
	ID       uuid.UUID
	IsListed bool
}

func (q *Queries) SetUserListed(c context.Context, arg SetUserListedParams) (User, error) {
	return scanUser(q.db.QueryRow(c, setUserListed, arg.ID, arg.IsListed))
}

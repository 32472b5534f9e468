package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cartColumns = `id, user_id, created_at, updated_at`

func scanCart(row interface{ Scan(dest ...interface{}) error }) (Cart, error) {
	var cart Cart
	err := row.Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	return cart, err
}

const upsertCart = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
RETURNING ` + cartColumns

func (q *Queries) UpsertCart(c context.Context, userId uuid.UUID) (Cart, error) {
	return scanCart(q.db.QueryRow(c, upsertCart, userId))
}

const findCartByUserId = `
SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1`

func (q *Queries) FindCartByUserId(c context.Context, userId uuid.UUID) (Cart, error) {
	return scanCart(q.db.QueryRow(c, findCartByUserId, userId))
}

const upsertCartItem = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + excluded.quantity, updated_at = now()
RETURNING id, cart_id, product_id, quantity, created_at, updated_at`

type UpsertCartItemParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
}

func (q *Queries) UpsertCartItem(c context.Context, arg UpsertCartItemParams) (CartItem, error) {
	var item CartItem
	err := q.db.QueryRow(c, upsertCartItem, arg.CartID, arg.ProductID, arg.Quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

const updateCartItemQuantity = `
UPDATE cart_items
SET quantity = $3, updated_at = now()
WHERE cart_id = $1 AND product_id = $2
RETURNING id, cart_id, product_id, quantity, created_at, updated_at`

type UpdateCartItemQuantityParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
}

func (q *Queries) UpdateCartItemQuantity(
	c context.Context,
	arg UpdateCartItemQuantityParams,
) (CartItem, error) {
	var item CartItem
	err := q.db.QueryRow(c, updateCartItemQuantity, arg.CartID, arg.ProductID, arg.Quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

const deleteCartItem = `
DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

type DeleteCartItemParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
}

func (q *Queries) DeleteCartItem(c context.Context, arg DeleteCartItemParams) (int64, error) {
	tag, err := q.db.Exec(c, deleteCartItem, arg.CartID, arg.ProductID)
	return tag.RowsAffected(), err
}

const clearCartItems = `
DELETE FROM cart_items WHERE cart_id = $1`

func (q *Queries) ClearCartItems(c context.Context, cartId uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, clearCartItems, cartId)
	return tag.RowsAffected(), err
}

const findCartItems = `
SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, p.name, p.price, p.image, p.is_listed
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at`

type FindCartItemsRow struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	ProductID   uuid.UUID
	Quantity    int32
	ProductName string
	Price       pgtype.Numeric
	Image       pgtype.Text
	IsListed    bool
}

func (q *Queries) FindCartItems(c context.Context, cartId uuid.UUID) ([]FindCartItemsRow, error) {
	rows, err := q.db.Query(c, findCartItems, cartId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindCartItemsRow{}
	for rows.Next() {
		var item FindCartItemsRow
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.ProductName,
			&item.Price,
			&item.Image,
			&item.IsListed,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

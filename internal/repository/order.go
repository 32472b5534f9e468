package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, address_id, payment_method, total_price, payment_status, order_status, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...interface{}) error }) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.AddressID,
		&o.PaymentMethod,
		&o.TotalPrice,
		&o.PaymentStatus,
		&o.OrderStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const insertOrder = `
INSERT INTO orders (user_id, address_id, payment_method, total_price)
VALUES ($1, $2, $3, $4)
RETURNING ` + orderColumns

type InsertOrderParams struct {
	UserID        uuid.UUID
	AddressID     uuid.UUID
	PaymentMethod string
	TotalPrice    pgtype.Numeric
}

func (q *Queries) InsertOrder(c context.Context, arg InsertOrderParams) (Order, error) {
	return scanOrder(q.db.QueryRow(
		c,
		insertOrder,
		arg.UserID,
		arg.AddressID,
		arg.PaymentMethod,
		arg.TotalPrice,
	))
}

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, price, quantity)
VALUES ($1, $2, $3, $4)`

type InsertOrderItemParams struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Price     pgtype.Numeric
	Quantity  int32
}

func (q *Queries) InsertOrderItems(c context.Context, args []InsertOrderItemParams) (int64, error) {
	var inserted int64
	for _, arg := range args {
		tag, err := q.db.Exec(c, insertOrderItem, arg.OrderID, arg.ProductID, arg.Price, arg.Quantity)
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const findOrderById = `
SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(c, findOrderById, id))
}

const findOrderByIdAndUserId = `
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`

type FindOrderByIdAndUserIdParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) FindOrderByIdAndUserId(
	c context.Context,
	arg FindOrderByIdAndUserIdParams,
) (Order, error) {
	return scanOrder(q.db.QueryRow(c, findOrderByIdAndUserId, arg.ID, arg.UserID))
}

const findOrdersByUserId = `
SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

func (q *Queries) FindOrdersByUserId(c context.Context, userId uuid.UUID) ([]Order, error) {
	rows, err := q.db.Query(c, findOrdersByUserId, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const findOrders = `
SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

type FindOrdersParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) FindOrders(c context.Context, arg FindOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(c, findOrders, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const findOrderItems = `
SELECT oi.id, oi.order_id, oi.product_id, oi.price, oi.quantity, p.name, p.image
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.created_at`

type FindOrderItemsRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	Price       pgtype.Numeric
	Quantity    int32
	ProductName string
	Image       pgtype.Text
}

func (q *Queries) FindOrderItems(c context.Context, orderId uuid.UUID) ([]FindOrderItemsRow, error) {
	rows, err := q.db.Query(c, findOrderItems, orderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindOrderItemsRow{}
	for rows.Next() {
		var item FindOrderItemsRow
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Price,
			&item.Quantity,
			&item.ProductName,
			&item.Image,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const updateOrderStatus = `
UPDATE orders SET order_status = $2, updated_at = now() WHERE id = $1
RETURNING ` + orderColumns

type UpdateOrderStatusParams struct {
	ID          uuid.UUID
	OrderStatus OrderStatus
}

func (q *Queries) UpdateOrderStatus(c context.Context, arg UpdateOrderStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(c, updateOrderStatus, arg.ID, arg.OrderStatus))
}

const updatePaymentStatus = `
UPDATE orders SET payment_status = $2, updated_at = now() WHERE id = $1
RETURNING ` + orderColumns

type UpdatePaymentStatusParams struct {
	ID            uuid.UUID
	PaymentStatus PaymentStatus
}

func (q *Queries) UpdatePaymentStatus(
	c context.Context,
	arg UpdatePaymentStatusParams,
) (Order, error) {
	return scanOrder(q.db.QueryRow(c, updatePaymentStatus, arg.ID, arg.PaymentStatus))
}

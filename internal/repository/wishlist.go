package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertWishlist = `
INSERT INTO wishlists (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
RETURNING id, user_id, created_at, updated_at`

func (q *Queries) UpsertWishlist(c context.Context, userId uuid.UUID) (Wishlist, error) {
	var w Wishlist
	err := q.db.QueryRow(c, upsertWishlist, userId).
		Scan(&w.ID, &w.UserID, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const findWishlistByUserId = `
SELECT id, user_id, created_at, updated_at FROM wishlists WHERE user_id = $1`

func (q *Queries) FindWishlistByUserId(c context.Context, userId uuid.UUID) (Wishlist, error) {
	var w Wishlist
	err := q.db.QueryRow(c, findWishlistByUserId, userId).
		Scan(&w.ID, &w.UserID, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const insertWishlistItem = `
INSERT INTO wishlist_items (wishlist_id, product_id)
VALUES ($1, $2)
ON CONFLICT (wishlist_id, product_id) DO NOTHING`

type InsertWishlistItemParams struct {
	WishlistID uuid.UUID
	ProductID  uuid.UUID
}

func (q *Queries) InsertWishlistItem(
	c context.Context,
	arg InsertWishlistItemParams,
) (int64, error) {
	tag, err := q.db.Exec(c, insertWishlistItem, arg.WishlistID, arg.ProductID)
	return tag.RowsAffected(), err
}

const deleteWishlistItem = `
DELETE FROM wishlist_items WHERE wishlist_id = $1 AND product_id = $2`

type DeleteWishlistItemParams struct {
	WishlistID uuid.UUID
	ProductID  uuid.UUID
}

func (q *Queries) DeleteWishlistItem(
	c context.Context,
	arg DeleteWishlistItemParams,
) (int64, error) {
	tag, err := q.db.Exec(c, deleteWishlistItem, arg.WishlistID, arg.ProductID)
	return tag.RowsAffected(), err
}

const findWishlistItems = `
SELECT wi.id, wi.wishlist_id, wi.product_id, p.name, p.price, p.image, p.is_listed
FROM wishlist_items wi
JOIN products p ON p.id = wi.product_id
WHERE wi.wishlist_id = $1
ORDER BY wi.created_at`

type FindWishlistItemsRow struct {
	ID          uuid.UUID
	WishlistID  uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Price       pgtype.Numeric
	Image       pgtype.Text
	IsListed    bool
}

func (q *Queries) FindWishlistItems(
	c context.Context,
	wishlistId uuid.UUID,
) ([]FindWishlistItemsRow, error) {
	rows, err := q.db.Query(c, findWishlistItems, wishlistId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindWishlistItemsRow{}
	for rows.Next() {
		var item FindWishlistItemsRow
		err := rows.Scan(
			&item.ID,
			&item.WishlistID,
			&item.ProductID,
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

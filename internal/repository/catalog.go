package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const categoryColumns = `id, title, slug, image, is_listed, created_at, updated_at`

func scanCategory(row interface{ Scan(dest ...interface{}) error }) (Category, error) {
	var cat Category
	err := row.Scan(
		&cat.ID,
		&cat.Title,
		&cat.Slug,
		&cat.Image,
		&cat.IsListed,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	return cat, err
}

const productColumns = `id, category_id, name, description, price, stock, image, is_listed, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...interface{}) error }) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Image,
		&p.IsListed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (q *Queries) collectProducts(c context.Context, sql string, args ...interface{}) ([]Product, error) {
	rows, err := q.db.Query(c, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const insertCategory = `
INSERT INTO categories (title, slug, image)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

type InsertCategoryParams struct {
	Title string
	Slug  string
	Image pgtype.Text
}

func (q *Queries) InsertCategory(c context.Context, arg InsertCategoryParams) (Category, error) {
	return scanCategory(q.db.QueryRow(c, insertCategory, arg.Title, arg.Slug, arg.Image))
}

const updateCategory = `
UPDATE categories
SET title      = coalesce(nullif($2, ''), title),
    slug       = coalesce(nullif($3, ''), slug),
    image      = coalesce($4, image),
    is_listed  = $5,
    updated_at = now()
WHERE id = $1
RETURNING ` + categoryColumns

type UpdateCategoryParams struct {
	ID       uuid.UUID
	Title    string
	Slug     string
	Image    pgtype.Text
	IsListed bool
}

func (q *Queries) UpdateCategory(c context.Context, arg UpdateCategoryParams) (Category, error) {
	return scanCategory(
		q.db.QueryRow(c, updateCategory, arg.ID, arg.Title, arg.Slug, arg.Image, arg.IsListed),
	)
}

const deleteCategory = `
DELETE FROM categories WHERE id = $1`

func (q *Queries) DeleteCategory(c context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, deleteCategory, id)
	return tag.RowsAffected(), err
}

const findCategories = `
SELECT ` + categoryColumns + ` FROM categories ORDER BY title`

func (q *Queries) FindCategories(c context.Context) ([]Category, error) {
	rows, err := q.db.Query(c, findCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

const findListedCategories = `
SELECT ` + categoryColumns + ` FROM categories WHERE is_listed = true ORDER BY title`

func (q *Queries) FindListedCategories(c context.Context) ([]Category, error) {
	rows, err := q.db.Query(c, findListedCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

const insertProduct = `
INSERT INTO products (category_id, name, description, price, stock, image)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + productColumns

type InsertProductParams struct {
	CategoryID  uuid.UUID
	Name        string
	Description pgtype.Text
	Price       pgtype.Numeric
	Stock       int32
	Image       pgtype.Text
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	return scanProduct(q.db.QueryRow(
		c,
		insertProduct,
		arg.CategoryID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Stock,
		arg.Image,
	))
}

const updateProduct = `
UPDATE products
SET category_id = coalesce($2, category_id),
    name        = coalesce(nullif($3, ''), name),
    description = coalesce($4, description),
    price       = coalesce($5, price),
    stock       = coalesce($6, stock),
    image       = coalesce($7, image),
    is_listed   = $8,
    updated_at  = now()
WHERE id = $1
RETURNING ` + productColumns

type UpdateProductParams struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description pgtype.Text
	Price       *pgtype.Numeric
	Stock       *int32
	Image       pgtype.Text
	IsListed    bool
}

func (q *Queries) UpdateProduct(c context.Context, arg UpdateProductParams) (Product, error) {
	return scanProduct(q.db.QueryRow(
		c,
		updateProduct,
		arg.ID,
		arg.CategoryID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Stock,
		arg.Image,
		arg.IsListed,
	))
}

const deleteProduct = `
DELETE FROM products WHERE id = $1`

func (q *Queries) DeleteProduct(c context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, deleteProduct, id)
	return tag.RowsAffected(), err
}

const findProductById = `
SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(c, findProductById, id))
}

const findListedProducts = `
SELECT p.id, p.category_id, p.name, p.description, p.price, p.stock, p.image, p.is_listed, p.created_at, p.updated_at
FROM products p
JOIN categories cat ON cat.id = p.category_id
WHERE p.is_listed = true AND cat.is_listed = true
ORDER BY p.created_at DESC
LIMIT $1 OFFSET $2`

type FindListedProductsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) FindListedProducts(c context.Context, arg FindListedProductsParams) ([]Product, error) {
	return q.collectProducts(c, findListedProducts, arg.Limit, arg.Offset)
}

const countListedProducts = `
SELECT count(*)
FROM products p
JOIN categories cat ON cat.id = p.category_id
WHERE p.is_listed = true AND cat.is_listed = true`

func (q *Queries) CountListedProducts(c context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(c, countListedProducts).Scan(&count)
	return count, err
}

const findProducts = `
SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

type FindProductsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) FindProducts(c context.Context, arg FindProductsParams) ([]Product, error) {
	return q.collectProducts(c, findProducts, arg.Limit, arg.Offset)
}

const findRelatedProducts = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1 AND id <> $2 AND is_listed = true
ORDER BY created_at DESC
LIMIT $3`

type FindRelatedProductsParams struct {
	CategoryID uuid.UUID
	ExcludeID  uuid.UUID
	Limit      int32
}

func (q *Queries) FindRelatedProducts(c context.Context, arg FindRelatedProductsParams) ([]Product, error) {
	return q.collectProducts(c, findRelatedProducts, arg.CategoryID, arg.ExcludeID, arg.Limit)
}

const findProductsByCategories = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = any($1::uuid[]) AND is_listed = true
ORDER BY created_at DESC`

func (q *Queries) FindProductsByCategories(c context.Context, categoryIds []uuid.UUID) ([]Product, error) {
	return q.collectProducts(c, findProductsByCategories, categoryIds)
}

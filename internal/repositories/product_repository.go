package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, products []models.Product) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name_ar, name_en, category, price, unit, image, in_stock, is_deal, deal_price, is_best_seller, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var (
		dealPrice decimal.NullDecimal
		createdAt sql.NullTime
	)

	err := row.Scan(&product.ID, &product.Name.Ar, &product.Name.En, &product.Category, &product.Price, &product.Unit,
		&product.Image, &product.InStock, &product.IsDeal, &dealPrice, &product.IsBestSeller, &createdAt)
	if err != nil {
		return nil, err
	}

	if dealPrice.Valid {
		product.DealPrice = &dealPrice.Decimal
	}

	if createdAt.Valid {
		product.CreatedAt = &createdAt.Time
	}

	return product, nil
}

func dealPriceArg(p *models.Product) decimal.NullDecimal {
	if p.DealPrice == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *p.DealPrice, Valid: true}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name_ar, name_en, category, price, unit, image, in_stock, is_deal, deal_price, is_best_seller)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	var createdAt sql.NullTime

	err := r.DB.QueryRowContext(dbCtx, query, product.Name.Ar, product.Name.En, product.Category, product.Price, product.Unit,
		product.Image, product.InStock, product.IsDeal, dealPriceArg(product), product.IsBestSeller).Scan(&product.ID, &createdAt)
	if err != nil {
		return err
	}

	if createdAt.Valid {
		product.CreatedAt = &createdAt.Time
	}

	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET name_ar = $1, name_en = $2, category = $3, price = $4, unit = $5, image = $6,
		in_stock = $7, is_deal = $8, deal_price = $9, is_best_seller = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING created_at`

	var createdAt sql.NullTime

	err := r.DB.QueryRowContext(dbCtx, query, product.Name.Ar, product.Name.En, product.Category, product.Price, product.Unit,
		product.Image, product.InStock, product.IsDeal, dealPriceArg(product), product.IsBestSeller, product.ID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return err
	}

	if createdAt.Valid {
		product.CreatedAt = &createdAt.Time
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) CountProducts(ctx context.Context) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// BulkInsert writes every product in one transaction, keeping the given ids.
// Each row gets its own created_at, a millisecond apart and descending, so the
// newest-first listing returns the products in the order they were given.
func (r *productRepository) BulkInsert(ctx context.Context, products []models.Product) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(dbCtx, `INSERT INTO products (id, name_ar, name_en, category, price, unit, image, in_stock, is_deal, deal_price, is_best_seller, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}

	defer stmt.Close()

	seededAt := time.Now().UTC()

	for i := range products {
		p := &products[i]
		createdAt := seededAt.Add(-time.Duration(i) * time.Millisecond)

		_, err := stmt.ExecContext(dbCtx, p.ID, p.Name.Ar, p.Name.En, p.Category, p.Price, p.Unit,
			p.Image, p.InStock, p.IsDeal, dealPriceArg(p), p.IsBestSeller, createdAt)
		if err != nil {
			return 0, fmt.Errorf("inserting product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return len(products), nil
}

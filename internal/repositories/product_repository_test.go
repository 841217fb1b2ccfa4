package repository_test

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name_ar", "name_en", "category", "price", "unit", "image", "in_stock", "is_deal", "deal_price", "is_best_seller", "created_at"}

func newSQLMock(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewProductRepo(db), mock
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`FROM products ORDER BY created_at DESC`)

	t.Run("Success - Rows Mapped", func(t *testing.T) {
		// Arrange
		repo, mock := newSQLMock(t)
		now := time.Now()

		rows := sqlmock.NewRows(productRowColumns).
			AddRow("p-2", "مانجو", "Mango", "imported", "2.50", "piece", "", true, true, "2.00", false, now).
			AddRow("p-1", "بندورة", "Tomatoes", "vegetables", "0.50", "kg", "img", false, false, nil, true, now.Add(-time.Hour))

		mock.ExpectQuery(query).WillReturnRows(rows)

		// Act
		products, err := repo.ListProducts(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)

		mango := products[0]
		assert.Equal(t, "p-2", mango.ID)
		assert.Equal(t, models.Localized{Ar: "مانجو", En: "Mango"}, mango.Name)
		assert.Equal(t, models.CategoryImported, mango.Category)
		assert.Equal(t, models.UnitPiece, mango.Unit)
		require.NotNil(t, mango.DealPrice)
		assert.Equal(t, "2.00", mango.DealPrice.StringFixed(2))
		assert.Equal(t, "2.00", mango.EffectivePrice().StringFixed(2))

		tomatoes := products[1]
		assert.Nil(t, tomatoes.DealPrice)
		assert.False(t, tomatoes.InStock)
		assert.True(t, tomatoes.IsBestSeller)
		require.NotNil(t, tomatoes.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty Store", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(productRowColumns))

		products, err := repo.ListProducts(ctx)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		products, err := repo.ListProducts(ctx)

		require.Error(t, err)
		assert.Nil(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow("p-1", "نعنع", "Mint", "herbs", "0.15", "bunch", "", true, false, nil, false, time.Now()))

		product, err := repo.GetProductByID(ctx, "p-1")

		require.NoError(t, err)
		assert.Equal(t, "Mint", product.Name.En)
		assert.Equal(t, "0.15", product.Price.StringFixed(2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows(productRowColumns))

		product, err := repo.GetProductByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`INSERT INTO products (name_ar, name_en, category`)

	product := func() *models.Product {
		deal := decimal.RequireFromString("1.75")

		return &models.Product{
			Name:      models.Localized{Ar: "فراولة", En: "Strawberries"},
			Category:  models.CategoryFruits,
			Price:     decimal.RequireFromString("2.25"),
			Unit:      models.UnitGram500,
			InStock:   true,
			IsDeal:    true,
			DealPrice: &deal,
		}
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := newSQLMock(t)
		p := product()
		now := time.Now()

		mock.ExpectQuery(query).
			WithArgs("فراولة", "Strawberries", models.CategoryFruits, sqlmock.AnyArg(), models.UnitGram500, "", true, true, sqlmock.AnyArg(), false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("generated-id", now))

		// Act
		err := repo.CreateProduct(ctx, p)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "generated-id", p.ID)
		require.NotNil(t, p.CreatedAt)
		assert.WithinDuration(t, now, *p.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unique Violation", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key"})

		err := repo.CreateProduct(ctx, product())

		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`UPDATE products SET name_ar = $1`)

	p := &models.Product{ID: "p-1", Name: models.Localized{Ar: "خيار", En: "Cucumber"}, Category: models.CategoryVegetables, Price: decimal.RequireFromString("0.60"), Unit: models.UnitKilogram}

	t.Run("Success", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		created := time.Now().Add(-24 * time.Hour)

		mock.ExpectQuery(query).
			WithArgs("خيار", "Cucumber", models.CategoryVegetables, sqlmock.AnyArg(), models.UnitKilogram, "", false, false, sqlmock.AnyArg(), false, "p-1").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

		err := repo.UpdateProduct(ctx, p)

		require.NoError(t, err)
		require.NotNil(t, p.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

		err := repo.UpdateProduct(ctx, p)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectExec(query).WithArgs("p-1").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteProduct(ctx, "p-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectExec(query).WithArgs("veg-tomatoes").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteProduct(ctx, "veg-tomatoes"), repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectExec(query).WillReturnError(errors.New("permission denied"))

		err := repo.DeleteProduct(ctx, "p-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountProducts(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.CountProducts(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

// recordTime matches any timestamp argument and keeps it for later assertions.
type recordTime struct {
	seen *[]time.Time
}

func (r recordTime) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if ok {
		*r.seen = append(*r.seen, ts)
	}

	return ok
}

func TestBulkInsert(t *testing.T) {
	ctx := t.Context()
	insert := regexp.QuoteMeta(`INSERT INTO products (id, name_ar`)

	products := []models.Product{
		{ID: "veg-tomatoes", Name: models.Localized{Ar: "بندورة", En: "Tomatoes"}, Category: models.CategoryVegetables, Price: decimal.RequireFromString("0.50"), Unit: models.UnitKilogram, InStock: true},
		{ID: "herb-mint", Name: models.Localized{Ar: "نعنع", En: "Mint"}, Category: models.CategoryHerbs, Price: decimal.RequireFromString("0.15"), Unit: models.UnitBunch, InStock: true},
	}

	t.Run("Success - Single Transaction", func(t *testing.T) {
		// Arrange
		repo, mock := newSQLMock(t)
		var stamps []time.Time

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(insert)
		prep.ExpectExec().WithArgs("veg-tomatoes", "بندورة", "Tomatoes", models.CategoryVegetables, sqlmock.AnyArg(), models.UnitKilogram, "", true, false, sqlmock.AnyArg(), false, recordTime{&stamps}).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().WithArgs("herb-mint", "نعنع", "Mint", models.CategoryHerbs, sqlmock.AnyArg(), models.UnitBunch, "", true, false, sqlmock.AnyArg(), false, recordTime{&stamps}).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		inserted, err := repo.BulkInsert(ctx, products)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
		require.NoError(t, mock.ExpectationsWereMet())

		// newest first, so the listing keeps the given order
		require.Len(t, stamps, 2)
		assert.True(t, stamps[0].After(stamps[1]))
	})

	t.Run("Failure - Rolled Back", func(t *testing.T) {
		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(insert)
		prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		inserted, err := repo.BulkInsert(ctx, products)

		require.Error(t, err)
		assert.Equal(t, 0, inserted)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

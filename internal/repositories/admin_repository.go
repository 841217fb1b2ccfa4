package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepo(db *sql.DB) AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO admins(email, password, name, created_at, updated_at)
		VALUES($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, admin.Email, admin.Password, admin.Name).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	admin := &models.Admin{}
	query := `SELECT id, email, password, name, created_at, updated_at
		FROM admins
		WHERE email = $1`

	err := r.DB.QueryRowContext(dbCtx, query, email).Scan(&admin.ID, &admin.Email, &admin.Password, &admin.Name, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return admin, nil
}

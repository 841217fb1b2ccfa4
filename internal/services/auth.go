package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMessage = "Invalid email or password"

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error)
}

type authService struct {
	repo        repository.AdminRepository
	rateLimiter repository.RateLimitRepository
	jwtKey      []byte
	tokenTTL    time.Duration
}

func NewAuthService(repo repository.AdminRepository, rateLimiter repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:        repo,
		rateLimiter: rateLimiter,
		jwtKey:      jwtKey,
		tokenTTL:    tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		logger.Warn("Admin login rate limited", slog.Int("retry_after", retryAfter))

		return nil, errors.TooManyRequestsError("Too many attempts. Please try again later.").
			WithDetail("retry_after=" + strconv.Itoa(retryAfter))
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	admin, err := s.repo.GetAdminByEmail(dbCtx, email)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.UnauthorizedError(invalidCredentialsMessage).WithDetail("remaining_attempts=" + strconv.Itoa(remaining))
		}

		return nil, errors.DatabaseError("Failed to look up admin").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError(invalidCredentialsMessage).WithDetail("remaining_attempts=" + strconv.Itoa(remaining))
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: admin.ID,
		Email:  admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
		Admin:     admin,
	}, nil
}

func (s *authService) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	existing, err := s.repo.GetAdminByEmail(dbCtx, email)
	if err != nil && !stdErrors.Is(err, repository.ErrNotFound) {
		return nil, errors.DatabaseError("Failed to look up admin").WithError(err)
	}

	if existing != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	admin := &models.Admin{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashed),
	}

	if err := s.repo.CreateAdmin(dbCtx, admin); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to create admin").WithError(err)
	}

	return admin, nil
}

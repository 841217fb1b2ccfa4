package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/config"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/grocery-storefront/pkg/sendgrid"
	"github.com/go-playground/validator/v10"
)

const orderCopyTimeout = 10 * time.Second

type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

// OrderCopy configures the optional e-mail copy of each order sent to the store owner.
type OrderCopy struct {
	Mailer sendgrid.EmailService
	To     string
}

type checkoutService struct {
	sessions  *SessionStore
	validator *validator.Validate
	pricing   cart.Pricing
	cfg       config.CheckoutConfig
	orderCopy *OrderCopy
}

// NewCheckoutService builds the checkout flow. orderCopy may be nil.
func NewCheckoutService(sessions *SessionStore, validate *validator.Validate, pricing cart.Pricing, cfg config.CheckoutConfig, orderCopy *OrderCopy) CheckoutService {
	return &checkoutService{
		sessions:  sessions,
		validator: validate,
		pricing:   pricing,
		cfg:       cfg,
		orderCopy: orderCopy,
	}
}

func sanitizeCustomer(info models.CustomerInfo) models.CustomerInfo {
	info.Name = plainText(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Address = plainText(info.Address)
	info.Notes = plainText(info.Notes)

	return info
}

// Checkout turns the session cart into a chat hand-off link. The cart is
// cleared once the link is built; delivery of the message is not observable.
// The owner copy is mailed after the session lock is released.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	resp, info, err := s.handOff(ctx, sessionID, req)
	if err != nil {
		return nil, err
	}

	s.sendOrderCopy(ctx, info, resp.Message)

	return resp, nil
}

func (s *checkoutService) handOff(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, models.CustomerInfo, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	ledger, err := s.sessions.loadLedger(ctx, sessionID)
	if err != nil {
		return nil, models.CustomerInfo{}, err
	}

	if ledger.Empty() {
		return nil, models.CustomerInfo{}, errors.BadRequestError("Cart is empty")
	}

	totals := ledger.Totals(s.pricing)
	lang := req.Language

	if !lang.Valid() {
		if lang, err = s.sessions.loadLanguage(ctx, sessionID); err != nil {
			return nil, models.CustomerInfo{}, err
		}
	}

	if !totals.MinimumMet {
		return nil, models.CustomerInfo{}, errors.BadRequestError("Minimum order not reached").
			WithDetail(fmt.Sprintf("Add %s %s more to place the order", totals.RemainingForMinimum.StringFixed(2), catalog.Currency(lang)))
	}

	info := sanitizeCustomer(req.Customer)

	if fields := checkout.Validate(s.validator, info); len(fields) > 0 {
		return nil, models.CustomerInfo{}, errors.ValidationError("Invalid delivery details").WithFields(fields)
	}

	items := ledger.Items()
	message := checkout.BuildMessage(items, totals, info, lang)
	url := checkout.HandoffURL(s.cfg.BaseURL, s.cfg.WhatsAppNumber, message)

	if err := s.sessions.discard(ctx, repository.CartSnapshot, sessionID); err != nil {
		return nil, models.CustomerInfo{}, err
	}

	middleware.LoggerFromContext(ctx).Info("Order handed off",
		slog.Int("items", len(items)),
		slog.String("total", totals.Total.StringFixed(2)),
		slog.String("language", string(lang)))

	return &models.CheckoutResponse{URL: url, Message: message, Language: lang, Totals: totals}, info, nil
}

func (s *checkoutService) sendOrderCopy(ctx context.Context, info models.CustomerInfo, message string) {
	if s.orderCopy == nil || s.orderCopy.Mailer == nil || s.orderCopy.To == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orderCopyTimeout)
	defer cancel()

	req := &models.EmailNotificationRequest{
		To:      s.orderCopy.To,
		Subject: fmt.Sprintf("New order: %s (%s)", info.Name, info.Phone),
		Content: message,
	}

	if err := s.orderCopy.Mailer.Send(ctx, req); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to send order copy", slog.String("error", err.Error()))
	}
}

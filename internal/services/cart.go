package service

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartView, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartView, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartView, error)
	ClearCart(ctx context.Context, sessionID string) (*models.CartView, error)
}

type cartService struct {
	sessions *SessionStore
	catalog  CatalogService
	pricing  cart.Pricing
}

func NewCartService(sessions *SessionStore, catalog CatalogService, pricing cart.Pricing) CartService {
	return &cartService{
		sessions: sessions,
		catalog:  catalog,
		pricing:  pricing,
	}
}

func (s *cartService) view(ledger *cart.Ledger) *models.CartView {
	v := ledger.View(s.pricing)

	return &v
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	ledger, err := s.sessions.loadLedger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.view(ledger), nil
}

// mutate runs one ledger operation under the session lock and persists the result.
func (s *cartService) mutate(ctx context.Context, sessionID string, op func(*cart.Ledger) error) (*models.CartView, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	ledger, err := s.sessions.loadLedger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := op(ledger); err != nil {
		return nil, err
	}

	if err := s.sessions.saveLedger(ctx, sessionID, ledger); err != nil {
		return nil, err
	}

	return s.view(ledger), nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error) {
	if req.Kind == models.KindCustomBox {
		return s.addCustomBox(ctx, sessionID, req.ID)
	}

	entity, err := s.catalog.ResolveSellable(ctx, req.Kind, req.ID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(l *cart.Ledger) error {
		l.Add(entity)

		return nil
	})
}

func (s *cartService) addCustomBox(ctx context.Context, sessionID, boxID string) (*models.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *cart.Ledger) error {
		collection, err := s.sessions.loadCollection(ctx, sessionID)
		if err != nil {
			return err
		}

		box, ok := collection.Get(boxID)
		if !ok {
			return errors.NotFoundError("Custom box not found")
		}

		l.Add(models.BoxSellable(box))

		return nil
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *cart.Ledger) error {
		if !l.SetQuantity(itemID, quantity) {
			return errors.NotFoundError("Item not in cart")
		}

		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *cart.Ledger) error {
		l.Remove(itemID)

		return nil
	})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	if err := s.sessions.discard(ctx, repository.CartSnapshot, sessionID); err != nil {
		return nil, err
	}

	return s.view(cart.New()), nil
}

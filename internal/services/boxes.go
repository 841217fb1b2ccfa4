package service

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/boxes"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
)

type BoxService interface {
	GetDraft(ctx context.Context, sessionID string) (*models.Draft, error)
	AddToDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error)
	RemoveFromDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error)
	ClearDraft(ctx context.Context, sessionID string) (*models.Draft, error)
	EditBox(ctx context.Context, sessionID, boxID string) (*models.Draft, error)
	ListBoxes(ctx context.Context, sessionID string) ([]models.Box, error)
	SaveBox(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.Box, error)
	DeleteBox(ctx context.Context, sessionID, boxID string) error
	AddDraftToCart(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.CartView, error)
}

type boxService struct {
	sessions *SessionStore
	catalog  CatalogService
	pricing  cart.Pricing
	now      func() time.Time
}

func NewBoxService(sessions *SessionStore, catalog CatalogService, pricing cart.Pricing) BoxService {
	return &boxService{
		sessions: sessions,
		catalog:  catalog,
		pricing:  pricing,
		now:      time.Now,
	}
}

func draftView(d *boxes.Draft) *models.Draft {
	v := d.View()

	return &v
}

func (s *boxService) GetDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	draft, err := s.sessions.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return draftView(draft), nil
}

func (s *boxService) mutateDraft(ctx context.Context, sessionID string, op func(*boxes.Draft) error) (*models.Draft, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	draft, err := s.sessions.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := op(draft); err != nil {
		return nil, err
	}

	if err := s.sessions.saveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	return draftView(draft), nil
}

func (s *boxService) AddToDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !product.InStock {
		return nil, errors.BadRequestError("Product is out of stock")
	}

	return s.mutateDraft(ctx, sessionID, func(d *boxes.Draft) error {
		d.AddProduct(*product)

		return nil
	})
}

func (s *boxService) RemoveFromDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error) {
	return s.mutateDraft(ctx, sessionID, func(d *boxes.Draft) error {
		if !d.RemoveProduct(productID) {
			return errors.NotFoundError("Product not in box")
		}

		return nil
	})
}

func (s *boxService) ClearDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	return s.mutateDraft(ctx, sessionID, func(d *boxes.Draft) error {
		d.Reset()

		return nil
	})
}

func (s *boxService) EditBox(ctx context.Context, sessionID, boxID string) (*models.Draft, error) {
	return s.mutateDraft(ctx, sessionID, func(d *boxes.Draft) error {
		collection, err := s.sessions.loadCollection(ctx, sessionID)
		if err != nil {
			return err
		}

		box, ok := collection.Get(boxID)
		if !ok {
			return errors.NotFoundError("Custom box not found")
		}

		d.Load(box)

		return nil
	})
}

func (s *boxService) ListBoxes(ctx context.Context, sessionID string) ([]models.Box, error) {
	collection, err := s.sessions.loadCollection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return collection.List(), nil
}

func (s *boxService) SaveBox(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.Box, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	return s.save(ctx, sessionID, plainText(req.Name), req.ExistingID)
}

// save materialises the draft into the collection and resets the draft. A cart
// line holding an edited box is refreshed so it prices the new selection.
// Callers hold the session lock.
func (s *boxService) save(ctx context.Context, sessionID, name, existingID string) (*models.Box, error) {
	draft, err := s.sessions.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	collection, err := s.sessions.loadCollection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if existingID == "" {
		existingID = draft.EditingID
	}

	box, err := collection.Save(name, draft.Selection, existingID, s.now())
	if err != nil {
		if stdErrors.Is(err, boxes.ErrBlankName) || stdErrors.Is(err, boxes.ErrEmptySelection) {
			return nil, errors.ValidationError(err.Error()).WithError(err)
		}

		return nil, errors.InternalError("Failed to save custom box").WithError(err)
	}

	if err := s.sessions.saveCollection(ctx, sessionID, collection); err != nil {
		return nil, err
	}

	ledger, err := s.sessions.loadLedger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if ledger.Refresh(models.BoxSellable(box)) {
		if err := s.sessions.saveLedger(ctx, sessionID, ledger); err != nil {
			return nil, err
		}
	}

	draft.Reset()

	if err := s.sessions.saveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	return box, nil
}

// DeleteBox removes a saved box. A cart line already holding it keeps its
// snapshot so the order can still be placed.
func (s *boxService) DeleteBox(ctx context.Context, sessionID, boxID string) error {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	collection, err := s.sessions.loadCollection(ctx, sessionID)
	if err != nil {
		return err
	}

	if !collection.Delete(boxID) {
		return errors.NotFoundError("Custom box not found")
	}

	return s.sessions.saveCollection(ctx, sessionID, collection)
}

// AddDraftToCart saves the draft (under the localized default name when none
// is given) and adds the resulting box to the cart.
func (s *boxService) AddDraftToCart(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.CartView, error) {
	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	name := plainText(req.Name)
	if name == "" {
		lang := req.Language
		if !lang.Valid() {
			stored, err := s.sessions.loadLanguage(ctx, sessionID)
			if err != nil {
				return nil, err
			}

			lang = stored
		}

		name = catalog.DefaultCustomBoxName.In(lang)
	}

	box, err := s.save(ctx, sessionID, name, req.ExistingID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.sessions.loadLedger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ledger.Add(models.BoxSellable(box))

	if err := s.sessions.saveLedger(ctx, sessionID, ledger); err != nil {
		return nil, err
	}

	v := ledger.View(s.pricing)

	return &v, nil
}

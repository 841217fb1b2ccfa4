package service_test

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/boxes"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	serviceMocks "github.com/aaravmahajanofficial/grocery-storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type boxFixture struct {
	store   *memorySessions
	catalog *serviceMocks.CatalogService
	service service.BoxService
}

func newBoxFixture(t *testing.T) *boxFixture {
	f := &boxFixture{store: newMemorySessions(), catalog: new(serviceMocks.CatalogService)}
	f.service = service.NewBoxService(service.NewSessionStore(f.store), f.catalog, testPricing())

	for _, id := range []string{"herb-mint", "veg-tomatoes", "imported-cherries"} {
		f.catalog.On("GetProduct", mock.Anything, id).Return(staticProduct(t, id), nil).Maybe()
	}

	f.catalog.On("GetProduct", mock.Anything, "gone").Return(nil, appErrors.NotFoundError("Product not found")).Maybe()

	return f
}

func appCode(t *testing.T, err error) string {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)

	return appErr.Code
}

func TestBoxService_Draft(t *testing.T) {
	t.Run("Success - Add And Remove", func(t *testing.T) {
		// Arrange
		f := newBoxFixture(t)
		ctx := t.Context()

		// Act
		_, err := f.service.AddToDraft(ctx, sessionID, "herb-mint")
		require.NoError(t, err)
		_, err = f.service.AddToDraft(ctx, sessionID, "herb-mint")
		require.NoError(t, err)
		draft, err := f.service.AddToDraft(ctx, sessionID, "veg-tomatoes")
		require.NoError(t, err)

		// Assert
		assert.Equal(t, 3, draft.Count)
		assert.Equal(t, "0.80", draft.Total.StringFixed(2))
		assert.Equal(t, []string{"2 ربطة نعنع", "1 كيلو بندورة"}, draft.Contents.Ar)
		assert.Equal(t, []string{"2 bunch Mint", "1 kg Tomatoes"}, draft.Contents.En)

		draft, err = f.service.RemoveFromDraft(ctx, sessionID, "herb-mint")
		require.NoError(t, err)
		assert.Equal(t, 2, draft.Count)

		draft, err = f.service.GetDraft(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, draft.Selection, 2)

		draft, err = f.service.ClearDraft(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, draft.Selection)
		assert.True(t, draft.Total.IsZero())
	})

	t.Run("Failure - Out Of Stock Product", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.AddToDraft(t.Context(), sessionID, "imported-cherries")

		assert.Equal(t, appErrors.ErrCodeBadRequest, appCode(t, err))
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.AddToDraft(t.Context(), sessionID, "gone")

		assert.Equal(t, appErrors.ErrCodeNotFound, appCode(t, err))
	})

	t.Run("Failure - Remove Product Not In Draft", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.RemoveFromDraft(t.Context(), sessionID, "herb-mint")

		assert.Equal(t, appErrors.ErrCodeNotFound, appCode(t, err))
	})
}

func TestBoxService_SaveBox(t *testing.T) {
	t.Run("Success - Draft Saved And Reset", func(t *testing.T) {
		f := newBoxFixture(t)
		ctx := t.Context()

		_, err := f.service.AddToDraft(ctx, sessionID, "veg-tomatoes")
		require.NoError(t, err)

		box, err := f.service.SaveBox(ctx, sessionID, &models.SaveBoxRequest{Name: "  <Family> box\x00 "})

		require.NoError(t, err)
		assert.Equal(t, models.Localized{Ar: "<Family> box", En: "<Family> box"}, box.Name)
		assert.True(t, box.IsCustom)
		assert.Equal(t, "0.50", box.Price.StringFixed(2))

		saved, err := f.service.ListBoxes(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, box.ID, saved[0].ID)

		draft, err := f.service.GetDraft(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, draft.Selection)
	})

	t.Run("Failure - Blank Name", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.AddToDraft(t.Context(), sessionID, "veg-tomatoes")
		require.NoError(t, err)

		_, err = f.service.SaveBox(t.Context(), sessionID, &models.SaveBoxRequest{Name: "   "})

		assert.Equal(t, appErrors.ErrCodeValidation, appCode(t, err))
		assert.ErrorIs(t, err, boxes.ErrBlankName)
	})

	t.Run("Failure - Empty Selection", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.SaveBox(t.Context(), sessionID, &models.SaveBoxRequest{Name: "Empty"})

		assert.Equal(t, appErrors.ErrCodeValidation, appCode(t, err))
		assert.ErrorIs(t, err, boxes.ErrEmptySelection)
	})

	t.Run("Success - Edit Replaces In Place And Refreshes Cart", func(t *testing.T) {
		// Arrange
		f := newBoxFixture(t)
		ctx := t.Context()

		collection := boxes.NewCollection()
		original, err := collection.Save("Weekly", []models.BoxSelection{{Product: *staticProduct(t, "herb-mint"), Quantity: 2}}, "", testNow)
		require.NoError(t, err)
		f.store.put(t, repository.BoxesSnapshot, sessionID, collection)
		f.store.put(t, repository.CartSnapshot, sessionID, cart.New(models.CartItem{Entity: models.BoxSellable(original), Quantity: 3}))

		// Act
		draft, err := f.service.EditBox(ctx, sessionID, original.ID)
		require.NoError(t, err)
		assert.Equal(t, original.ID, draft.EditingID)

		_, err = f.service.AddToDraft(ctx, sessionID, "veg-tomatoes")
		require.NoError(t, err)

		updated, err := f.service.SaveBox(ctx, sessionID, &models.SaveBoxRequest{Name: "Weekly"})
		require.NoError(t, err)

		// Assert
		assert.Equal(t, original.ID, updated.ID)
		require.NotNil(t, updated.CreatedAt)
		assert.True(t, testNow.Equal(*updated.CreatedAt))
		assert.Equal(t, "0.80", updated.Price.StringFixed(2))

		saved, err := f.service.ListBoxes(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, saved, 1)

		ledger, err := cart.Decode(f.store.raw(repository.CartSnapshot, sessionID))
		require.NoError(t, err)
		items := ledger.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, "0.80", items[0].Entity.UnitPrice().StringFixed(2))
	})

	t.Run("Failure - Edit Unknown Box", func(t *testing.T) {
		f := newBoxFixture(t)

		_, err := f.service.EditBox(t.Context(), sessionID, "custom-missing")

		assert.Equal(t, appErrors.ErrCodeNotFound, appCode(t, err))
	})
}

func TestBoxService_DeleteBox(t *testing.T) {
	f := newBoxFixture(t)
	ctx := t.Context()

	collection := boxes.NewCollection()
	box, err := collection.Save("Weekly", []models.BoxSelection{{Product: *staticProduct(t, "herb-mint"), Quantity: 1}}, "", testNow)
	require.NoError(t, err)
	f.store.put(t, repository.BoxesSnapshot, sessionID, collection)

	t.Run("Success - Delete", func(t *testing.T) {
		require.NoError(t, f.service.DeleteBox(ctx, sessionID, box.ID))

		saved, err := f.service.ListBoxes(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, saved)
	})

	t.Run("Failure - Already Deleted", func(t *testing.T) {
		err := f.service.DeleteBox(ctx, sessionID, box.ID)

		assert.Equal(t, appErrors.ErrCodeNotFound, appCode(t, err))
	})
}

func TestBoxService_AddDraftToCart(t *testing.T) {
	tests := []struct {
		name         string
		storedLang   models.Language
		req          *models.SaveBoxRequest
		expectedName string
	}{
		{name: "Success - Default Name From Session Language", storedLang: models.LanguageEnglish, req: &models.SaveBoxRequest{}, expectedName: "Custom Box"},
		{name: "Success - Default Name Arabic Fallback", req: &models.SaveBoxRequest{}, expectedName: "صندوق مخصص"},
		{name: "Success - Request Language Wins", storedLang: models.LanguageEnglish, req: &models.SaveBoxRequest{Language: models.LanguageArabic}, expectedName: "صندوق مخصص"},
		{name: "Success - Given Name Kept", req: &models.SaveBoxRequest{Name: "Party"}, expectedName: "Party"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newBoxFixture(t)
			ctx := t.Context()

			if tc.storedLang != "" {
				f.store.put(t, repository.LanguageSnapshot, sessionID, tc.storedLang)
			}

			_, err := f.service.AddToDraft(ctx, sessionID, "herb-mint")
			require.NoError(t, err)

			// Act
			view, err := f.service.AddDraftToCart(ctx, sessionID, tc.req)

			// Assert
			require.NoError(t, err)
			require.Len(t, view.Items, 1)
			assert.Equal(t, models.KindCustomBox, view.Items[0].Kind)
			assert.Equal(t, tc.expectedName, view.Items[0].Name.Ar)
			assert.Equal(t, tc.expectedName, view.Items[0].Name.En)
			assert.Equal(t, "0.15", view.Totals.Subtotal.StringFixed(2))

			saved, err := f.service.ListBoxes(ctx, sessionID)
			require.NoError(t, err)
			assert.Len(t, saved, 1)
		})
	}

	t.Run("Failure - Empty Draft", func(t *testing.T) {
		f := newBoxFixture(t)

		view, err := f.service.AddDraftToCart(t.Context(), sessionID, &models.SaveBoxRequest{})

		assert.Nil(t, view)
		assert.Equal(t, appErrors.ErrCodeValidation, appCode(t, err))
	})
}

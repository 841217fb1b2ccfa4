package boxes_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/boxes"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(id, en, ar, price string, unit models.Unit) models.Product {
	return models.Product{
		ID:    id,
		Name:  models.Localized{Ar: ar, En: en},
		Price: decimal.RequireFromString(price),
		Unit:  unit,
		Image: "https://example.com/" + id + ".png",
	}
}

var (
	tomatoes = newProduct("veg-tomatoes", "Tomatoes", "بندورة", "0.50", models.UnitKilogram)
	mint     = newProduct("herb-mint", "Mint", "نعنع", "0.15", models.UnitBunch)
)

func TestDraft(t *testing.T) {
	t.Run("Success - Add And Remove", func(t *testing.T) {
		// Arrange
		d := &boxes.Draft{}

		// Act
		d.AddProduct(tomatoes)
		d.AddProduct(tomatoes)
		d.AddProduct(mint)

		// Assert
		require.Len(t, d.Selection, 2)
		assert.Equal(t, 2, d.Selection[0].Quantity)
		assert.Equal(t, 3, d.Count())
		assert.Equal(t, "1.15", d.Total().StringFixed(2))

		assert.True(t, d.RemoveProduct(tomatoes.ID))
		assert.Equal(t, 1, d.Selection[0].Quantity)

		assert.True(t, d.RemoveProduct(tomatoes.ID))
		require.Len(t, d.Selection, 1)
		assert.Equal(t, mint.ID, d.Selection[0].Product.ID)

		assert.False(t, d.RemoveProduct("missing"))
	})

	t.Run("Success - Total Uses Regular Price", func(t *testing.T) {
		d := &boxes.Draft{}
		deal := newProduct("imported-mango", "Mango", "مانجو", "2.50", models.UnitPiece)
		dealPrice := decimal.RequireFromString("2.00")
		deal.IsDeal = true
		deal.DealPrice = &dealPrice

		d.AddProduct(deal)

		assert.Equal(t, "2.50", d.Total().StringFixed(2))
	})

	t.Run("Success - Load And Reset", func(t *testing.T) {
		d := &boxes.Draft{}
		saved := &models.Box{ID: "custom-1", Selection: []models.BoxSelection{{Product: mint, Quantity: 4}}}

		d.Load(saved)
		d.AddProduct(mint)

		assert.Equal(t, "custom-1", d.EditingID)
		assert.Equal(t, 5, d.Count())
		assert.Equal(t, 4, saved.Selection[0].Quantity, "loading must not alias the saved selection")

		d.Reset()
		assert.Empty(t, d.Selection)
		assert.Empty(t, d.EditingID)
	})

	t.Run("Success - View Of Empty Draft", func(t *testing.T) {
		view := (&boxes.Draft{}).View()

		assert.NotNil(t, view.Selection)
		assert.True(t, view.Total.IsZero())
		assert.Empty(t, view.Contents.En)
	})
}

func TestContentLines(t *testing.T) {
	selection := []models.BoxSelection{
		{Product: tomatoes, Quantity: 2},
		{Product: mint, Quantity: 1},
		{Product: newProduct("x", "Dates", "تمر", "3.00", models.Unit("crate")), Quantity: 1},
	}

	t.Run("Success - English", func(t *testing.T) {
		assert.Equal(t, []string{"2 kg Tomatoes", "1 bunch Mint", "1 crate Dates"}, boxes.ContentLines(selection, models.LanguageEnglish))
	})

	t.Run("Success - Arabic", func(t *testing.T) {
		assert.Equal(t, []string{"2 كيلو بندورة", "1 ربطة نعنع", "1 crate تمر"}, boxes.ContentLines(selection, models.LanguageArabic))
	})
}

func TestCollectionSave(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success - New Box", func(t *testing.T) {
		// Arrange
		c := boxes.NewCollection()
		selection := []models.BoxSelection{{Product: tomatoes, Quantity: 2}}

		// Act
		box, err := c.Save("  Weekly  ", selection, "", now)

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(box.ID, "custom-"))
		assert.Equal(t, "Weekly", box.Name.En)
		assert.Equal(t, "Weekly", box.Name.Ar)
		assert.Equal(t, "1.00", box.Price.StringFixed(2))
		assert.Equal(t, tomatoes.Image, box.Image)
		assert.True(t, box.IsCustom)
		assert.True(t, box.InStock)
		assert.Equal(t, catalog.CustomBoxDescription, box.Description)
		assert.Equal(t, []string{"2 kg Tomatoes"}, box.Contents.En)
		require.NotNil(t, box.CreatedAt)
		assert.Equal(t, now, *box.CreatedAt)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Success - Replace Preserves Creation Time", func(t *testing.T) {
		// Arrange
		c := boxes.NewCollection()
		first, err := c.Save("Mine", []models.BoxSelection{{Product: tomatoes, Quantity: 1}}, "", now)
		require.NoError(t, err)

		// Act
		later := now.Add(48 * time.Hour)
		second, err := c.Save("Mine v2", []models.BoxSelection{{Product: mint, Quantity: 3}}, first.ID, later)
		require.NoError(t, err)
		third, err := c.Save("Mine v3", []models.BoxSelection{{Product: tomatoes, Quantity: 5}}, first.ID, later.Add(time.Hour))
		require.NoError(t, err)

		// Assert
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.ID, third.ID)
		assert.Equal(t, now, *third.CreatedAt)

		stored, ok := c.Get(first.ID)
		require.True(t, ok)
		assert.Equal(t, "Mine v3", stored.Name.En)
		assert.Equal(t, "2.50", stored.Price.StringFixed(2))
	})

	t.Run("Success - Unknown Existing ID Appends", func(t *testing.T) {
		c := boxes.NewCollection()

		box, err := c.Save("Mine", []models.BoxSelection{{Product: mint, Quantity: 1}}, "custom-gone", now)

		require.NoError(t, err)
		assert.NotEqual(t, "custom-gone", box.ID)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Success - Placeholder Image", func(t *testing.T) {
		c := boxes.NewCollection()
		bare := mint
		bare.Image = ""

		box, err := c.Save("Mine", []models.BoxSelection{{Product: bare, Quantity: 1}}, "", now)

		require.NoError(t, err)
		assert.Equal(t, catalog.BoxPlaceholderImage, box.Image)
	})

	t.Run("Failure - Blank Name", func(t *testing.T) {
		c := boxes.NewCollection()

		_, err := c.Save("   ", []models.BoxSelection{{Product: mint, Quantity: 1}}, "", now)

		assert.ErrorIs(t, err, boxes.ErrBlankName)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Failure - Empty Selection", func(t *testing.T) {
		c := boxes.NewCollection()

		_, err := c.Save("Mine", nil, "", now)

		assert.ErrorIs(t, err, boxes.ErrEmptySelection)
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollectionDeleteAndSnapshot(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := boxes.NewCollection()
	a, err := c.Save("A", []models.BoxSelection{{Product: mint, Quantity: 1}}, "", now)
	require.NoError(t, err)
	b, err := c.Save("B", []models.BoxSelection{{Product: tomatoes, Quantity: 2}}, "", now)
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	restored, err := boxes.DecodeCollection(data)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())
	assert.Equal(t, a.ID, restored.List()[0].ID)
	assert.True(t, b.Price.Equal(restored.List()[1].Price))

	assert.True(t, restored.Delete(a.ID))
	assert.False(t, restored.Delete(a.ID))
	assert.Equal(t, 1, restored.Len())

	corrupt, err := boxes.DecodeCollection([]byte("{oops"))
	assert.Error(t, err)
	assert.Equal(t, 0, corrupt.Len())

	empty, err := json.Marshal(boxes.NewCollection())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	draft, err := boxes.DecodeDraft([]byte("nope"))
	assert.Error(t, err)
	assert.Empty(t, draft.Selection)
}

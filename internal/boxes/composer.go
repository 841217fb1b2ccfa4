package boxes

import (
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Draft is the working selection a shopper is assembling into a box.
// It is independent of the cart until saved.
type Draft struct {
	Selection []models.BoxSelection `json:"selection"`
	EditingID string                `json:"editing_id,omitempty"`
}

func (d *Draft) index(productID string) int {
	for i := range d.Selection {
		if d.Selection[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

func (d *Draft) AddProduct(p models.Product) {
	if i := d.index(p.ID); i >= 0 {
		d.Selection[i].Quantity++

		return
	}

	d.Selection = append(d.Selection, models.BoxSelection{Product: p, Quantity: 1})
}

// RemoveProduct decrements the product's quantity and drops it at zero.
// It reports whether the product was in the selection.
func (d *Draft) RemoveProduct(productID string) bool {
	i := d.index(productID)
	if i < 0 {
		return false
	}

	if d.Selection[i].Quantity <= 1 {
		d.Selection = append(d.Selection[:i], d.Selection[i+1:]...)

		return true
	}

	d.Selection[i].Quantity--

	return true
}

func (d *Draft) Reset() {
	d.Selection = nil
	d.EditingID = ""
}

// Load replaces the draft with a saved box so it can be edited.
func (d *Draft) Load(box *models.Box) {
	d.Selection = append([]models.BoxSelection(nil), box.Selection...)
	d.EditingID = box.ID
}

func (d *Draft) Total() decimal.Decimal {
	return Total(d.Selection)
}

func (d *Draft) Count() int {
	count := 0
	for _, s := range d.Selection {
		count += s.Quantity
	}

	return count
}

func (d *Draft) View() models.Draft {
	selection := d.Selection
	if selection == nil {
		selection = []models.BoxSelection{}
	}

	return models.Draft{
		Selection: selection,
		Total:     d.Total(),
		Count:     d.Count(),
		Contents: models.LocalizedList{
			Ar: ContentLines(d.Selection, models.LanguageArabic),
			En: ContentLines(d.Selection, models.LanguageEnglish),
		},
		EditingID: d.EditingID,
	}
}

// Total prices a selection at each product's regular price.
func Total(selection []models.BoxSelection) decimal.Decimal {
	total := decimal.Zero
	for _, s := range selection {
		total = total.Add(s.Product.Price.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}

	return total
}

// ContentLines renders "{quantity} {unit} {name}" per selected product, in selection order.
func ContentLines(selection []models.BoxSelection, lang models.Language) []string {
	lines := make([]string, 0, len(selection))
	for _, s := range selection {
		lines = append(lines, fmt.Sprintf("%d %s %s", s.Quantity, catalog.UnitLabel(s.Product.Unit, lang), s.Product.Name.In(lang)))
	}

	return lines
}

// DecodeDraft yields an empty draft for a missing or unreadable snapshot.
func DecodeDraft(data []byte) (*Draft, error) {
	d := &Draft{}
	if len(data) == 0 {
		return d, nil
	}

	if err := json.Unmarshal(data, d); err != nil {
		return &Draft{}, err
	}

	return d, nil
}

package cart

import (
	"encoding/json"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Pricing holds the store-wide money rules applied on top of the subtotal.
type Pricing struct {
	DeliveryFee  decimal.Decimal
	MinimumOrder decimal.Decimal
}

// Ledger is the shopper's cart. The zero value is an empty cart.
// Every derived figure is recomputed from the current items on each call.
type Ledger struct {
	items []models.CartItem
}

func New(items ...models.CartItem) *Ledger {
	l := &Ledger{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}

		if i := l.index(item.Entity.ID()); i >= 0 {
			l.items[i].Quantity += item.Quantity
			continue
		}

		item.IsBox = item.Entity.IsBox()
		l.items = append(l.items, item)
	}

	return l
}

func (l *Ledger) index(id string) int {
	for i := range l.items {
		if l.items[i].Entity.ID() == id {
			return i
		}
	}

	return -1
}

// Add increments the quantity of an existing line or inserts a new one at 1.
// An existing line keeps the entity snapshot it was first added with.
func (l *Ledger) Add(entity models.Sellable) {
	if i := l.index(entity.ID()); i >= 0 {
		l.items[i].Quantity++

		return
	}

	l.items = append(l.items, models.CartItem{Entity: entity, Quantity: 1, IsBox: entity.IsBox()})
}

// Refresh swaps the stored snapshot for an entity already in the cart,
// leaving its quantity alone. Used when a saved custom box is edited.
func (l *Ledger) Refresh(entity models.Sellable) bool {
	i := l.index(entity.ID())
	if i < 0 {
		return false
	}

	l.items[i].Entity = entity
	l.items[i].IsBox = entity.IsBox()

	return true
}

func (l *Ledger) Remove(id string) {
	if i := l.index(id); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
}

// SetQuantity overwrites the quantity; anything <= 0 removes the line.
// It reports whether a line with that id exists.
func (l *Ledger) SetQuantity(id string, quantity int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}

	if quantity <= 0 {
		l.Remove(id)

		return true
	}

	l.items[i].Quantity = quantity

	return true
}

func (l *Ledger) Clear() {
	l.items = nil
}

func (l *Ledger) Contains(id string) bool {
	return l.index(id) >= 0
}

func (l *Ledger) Items() []models.CartItem {
	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)

	return out
}

func (l *Ledger) Empty() bool {
	return len(l.items) == 0
}

func (l *Ledger) Count() int {
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}

	return count
}

func LineTotal(item models.CartItem) decimal.Decimal {
	return item.Entity.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func (l *Ledger) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range l.items {
		subtotal = subtotal.Add(LineTotal(item))
	}

	return subtotal
}

func (l *Ledger) Totals(p Pricing) models.CartTotals {
	subtotal := l.Subtotal()

	remaining := p.MinimumOrder.Sub(subtotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return models.CartTotals{
		ItemCount:           l.Count(),
		Subtotal:            subtotal,
		DeliveryFee:         p.DeliveryFee,
		Total:               subtotal.Add(p.DeliveryFee),
		MinimumOrder:        p.MinimumOrder,
		MinimumMet:          subtotal.GreaterThanOrEqual(p.MinimumOrder),
		RemainingForMinimum: remaining,
	}
}

func (l *Ledger) View(p Pricing) models.CartView {
	lines := make([]models.CartLine, 0, len(l.items))
	for _, item := range l.items {
		line := models.CartLine{
			ID:        item.Entity.ID(),
			Kind:      item.Entity.Kind,
			Name:      item.Entity.Name(),
			Unit:      item.Entity.Unit(),
			UnitPrice: item.Entity.UnitPrice(),
			Quantity:  item.Quantity,
			LineTotal: LineTotal(item),
			IsBox:     item.IsBox,
		}

		if item.Entity.Product != nil {
			line.Image = item.Entity.Product.Image
		} else if item.Entity.Box != nil {
			line.Image = item.Entity.Box.Image
		}

		lines = append(lines, line)
	}

	return models.CartView{Items: lines, Totals: l.Totals(p)}
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.items)
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	*l = *New(items...)

	return nil
}

// Decode rebuilds a ledger from a stored snapshot. A missing or unreadable
// snapshot yields an empty cart together with the decode error for logging.
func Decode(data []byte) (*Ledger, error) {
	l := &Ledger{}
	if len(data) == 0 {
		return l, nil
	}

	if err := json.Unmarshal(data, l); err != nil {
		return &Ledger{}, err
	}

	return l, nil
}

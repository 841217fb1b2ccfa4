package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type SellableKind string

const (
	KindProduct   SellableKind = "product"
	KindReadyBox  SellableKind = "ready_box"
	KindCustomBox SellableKind = "custom_box"
)

func (k SellableKind) Valid() bool {
	return k == KindProduct || k == KindReadyBox || k == KindCustomBox
}

// Sellable is anything that can sit in the cart. Exactly one of Product or Box
// is set, matching Kind.
type Sellable struct {
	Kind    SellableKind `json:"kind"`
	Product *Product     `json:"product,omitempty"`
	Box     *Box         `json:"box,omitempty"`
}

func ProductSellable(p *Product) Sellable {
	return Sellable{Kind: KindProduct, Product: p}
}

func BoxSellable(b *Box) Sellable {
	if b.IsCustom {
		return Sellable{Kind: KindCustomBox, Box: b}
	}

	return Sellable{Kind: KindReadyBox, Box: b}
}

func (s Sellable) ID() string {
	switch s.Kind {
	case KindProduct:
		return s.Product.ID
	case KindReadyBox, KindCustomBox:
		return s.Box.ID
	default:
		panic(fmt.Sprintf("unknown sellable kind %q", s.Kind))
	}
}

func (s Sellable) Name() Localized {
	switch s.Kind {
	case KindProduct:
		return s.Product.Name
	case KindReadyBox, KindCustomBox:
		return s.Box.Name
	default:
		panic(fmt.Sprintf("unknown sellable kind %q", s.Kind))
	}
}

func (s Sellable) UnitPrice() decimal.Decimal {
	switch s.Kind {
	case KindProduct:
		return s.Product.EffectivePrice()
	case KindReadyBox, KindCustomBox:
		return s.Box.Price
	default:
		panic(fmt.Sprintf("unknown sellable kind %q", s.Kind))
	}
}

// Unit is the product's sale unit, or UnitBox for both box kinds.
func (s Sellable) Unit() Unit {
	switch s.Kind {
	case KindProduct:
		return s.Product.Unit
	case KindReadyBox, KindCustomBox:
		return UnitBox
	default:
		panic(fmt.Sprintf("unknown sellable kind %q", s.Kind))
	}
}

func (s Sellable) IsBox() bool {
	return s.Kind == KindReadyBox || s.Kind == KindCustomBox
}

func (s *Sellable) UnmarshalJSON(data []byte) error {
	type raw Sellable

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	switch r.Kind {
	case KindProduct:
		if r.Product == nil {
			return fmt.Errorf("sellable of kind %q has no product", r.Kind)
		}
	case KindReadyBox, KindCustomBox:
		if r.Box == nil {
			return fmt.Errorf("sellable of kind %q has no box", r.Kind)
		}
	default:
		return fmt.Errorf("unknown sellable kind %q", r.Kind)
	}

	*s = Sellable(r)

	return nil
}

type CartItem struct {
	Entity   Sellable `json:"entity"`
	Quantity int      `json:"quantity"`
	IsBox    bool     `json:"is_box"`
}

type CartLine struct {
	ID        string          `json:"id"`
	Kind      SellableKind    `json:"kind"`
	Name      Localized       `json:"name"`
	Image     string          `json:"image"`
	Unit      Unit            `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
	IsBox     bool            `json:"is_box"`
}

type CartTotals struct {
	ItemCount           int             `json:"item_count"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	Total               decimal.Decimal `json:"total"`
	MinimumOrder        decimal.Decimal `json:"minimum_order"`
	MinimumMet          bool            `json:"minimum_met"`
	RemainingForMinimum decimal.Decimal `json:"remaining_for_minimum"`
}

type CartView struct {
	Items  []CartLine `json:"items"`
	Totals CartTotals `json:"totals"`
}

type AddCartItemRequest struct {
	Kind SellableKind `json:"kind" validate:"required,oneof=product ready_box custom_box"`
	ID   string       `json:"id" validate:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

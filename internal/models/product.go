package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Localized holds the Arabic and English rendering of a piece of text.
type Localized struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

func (l Localized) In(lang Language) string {
	if lang == LanguageEnglish {
		return l.En
	}

	return l.Ar
}

func (l Localized) Blank() bool {
	return strings.TrimSpace(l.Ar) == "" && strings.TrimSpace(l.En) == ""
}

type LocalizedList struct {
	Ar []string `json:"ar"`
	En []string `json:"en"`
}

func (l LocalizedList) In(lang Language) []string {
	if lang == LanguageEnglish {
		return l.En
	}

	return l.Ar
}

type Product struct {
	ID           string           `json:"id"`
	Name         Localized        `json:"name"`
	Category     Category         `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	Unit         Unit             `json:"unit"`
	Image        string           `json:"image"`
	InStock      bool             `json:"in_stock"`
	IsDeal       bool             `json:"is_deal,omitempty"`
	DealPrice    *decimal.Decimal `json:"deal_price,omitempty"`
	IsBestSeller bool             `json:"is_best_seller,omitempty"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`
}

// EffectivePrice is the deal price while a deal is active, the regular price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.IsDeal && p.DealPrice != nil && p.DealPrice.IsPositive() {
		return *p.DealPrice
	}

	return p.Price
}

func (p *Product) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name.Ar), q) || strings.Contains(strings.ToLower(p.Name.En), q)
}

type CreateProductRequest struct {
	Name         Localized        `json:"name"`
	Category     Category         `json:"category" validate:"required,oneof=vegetables fruits herbs organic imported"`
	Price        decimal.Decimal  `json:"price"`
	Unit         Unit             `json:"unit" validate:"required,oneof=kg piece bunch gram250 gram500 box"`
	Image        string           `json:"image" validate:"omitempty,url"`
	InStock      *bool            `json:"in_stock,omitempty"`
	IsDeal       bool             `json:"is_deal,omitempty"`
	DealPrice    *decimal.Decimal `json:"deal_price,omitempty"`
	IsBestSeller bool             `json:"is_best_seller,omitempty"`
}

// UpdateProductRequest is a partial update: nil fields are left untouched.
type UpdateProductRequest struct {
	Name         *Localized       `json:"name,omitempty"`
	Category     *Category        `json:"category,omitempty" validate:"omitempty,oneof=vegetables fruits herbs organic imported"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Unit         *Unit            `json:"unit,omitempty" validate:"omitempty,oneof=kg piece bunch gram250 gram500 box"`
	Image        *string          `json:"image,omitempty" validate:"omitempty,url"`
	InStock      *bool            `json:"in_stock,omitempty"`
	IsDeal       *bool            `json:"is_deal,omitempty"`
	DealPrice    *decimal.Decimal `json:"deal_price,omitempty"`
	IsBestSeller *bool            `json:"is_best_seller,omitempty"`
}

type ProductSource string

const (
	SourceStore  ProductSource = "store"
	SourceStatic ProductSource = "static"
)

type ProductFilter struct {
	Category    Category
	Query       string
	DealsOnly   bool
	BestSellers bool
	InStockOnly bool
	Limit       int
}

type CatalogStats struct {
	Total      int              `json:"total"`
	InStock    int              `json:"in_stock"`
	ByCategory map[Category]int `json:"by_category"`
}

type ProductList struct {
	Products []*Product    `json:"products"`
	Source   ProductSource `json:"source"`
	Warning  string        `json:"warning,omitempty"`
	Stats    *CatalogStats `json:"stats,omitempty"`
}

type DeleteProductResponse struct {
	ID      string `json:"id"`
	Masked  bool   `json:"masked"`
	Message string `json:"message"`
}

type SeedResponse struct {
	Inserted int `json:"inserted"`
}

type DedupeResponse struct {
	Removed []string `json:"removed"`
}

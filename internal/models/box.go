package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Box is a bundle sold as one line item. Ready-made boxes are catalog data;
// custom boxes carry the selection they were built from.
type Box struct {
	ID          string          `json:"id"`
	Name        Localized       `json:"name"`
	Description Localized       `json:"description"`
	Contents    LocalizedList   `json:"contents"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
	IsCustom    bool            `json:"is_custom,omitempty"`
	Selection   []BoxSelection  `json:"selection,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
}

type BoxSelection struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// SaveBoxRequest names the box once; the same name is stored for both languages.
type SaveBoxRequest struct {
	Name       string   `json:"name"`
	ExistingID string   `json:"existing_id,omitempty"`
	Language   Language `json:"language,omitempty" validate:"omitempty,oneof=ar en"`
}

type DraftItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type Draft struct {
	Selection []BoxSelection  `json:"selection"`
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
	Contents  LocalizedList   `json:"contents"`
	EditingID string          `json:"editing_id,omitempty"`
}

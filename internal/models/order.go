package models

// CustomerInfo is the delivery form filled in at checkout. It is never persisted.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required,notblank"`
	Phone   string `json:"phone" validate:"required,notblank,jo_phone"`
	Area    Area   `json:"area" validate:"required,area"`
	Address string `json:"address" validate:"required,notblank"`
	Slot    Slot   `json:"slot" validate:"required,slot"`
	Notes   string `json:"notes,omitempty"`
}

type CheckoutRequest struct {
	Customer CustomerInfo `json:"customer"`
	Language Language     `json:"language,omitempty" validate:"omitempty,oneof=ar en"`
}

type CheckoutResponse struct {
	URL      string     `json:"url"`
	Message  string     `json:"message"`
	Language Language   `json:"language"`
	Totals   CartTotals `json:"totals"`
}

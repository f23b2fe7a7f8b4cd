package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

// RentalCodePrefix starts every generated rental code.
const RentalCodePrefix = "LOCMR"

type Rental struct {
	ID              int32        `json:"id"`
	CustomerID      int32        `json:"customer_id"`
	Code            string       `json:"code"`
	StartDate       *time.Time   `json:"start_date,omitempty"`
	EndDate         *time.Time   `json:"end_date,omitempty"`
	Status          RentalStatus `json:"status"`
	TotalPriceCents int32        `json:"total_price_cents"`
	// Items is populated by the service layer; it is never persisted through Rental.
	Items []RentalItem `json:"items,omitempty"`
}

// RentalItem prices are a snapshot taken when the rental started and are
// never recomputed from the current product tiers.
type RentalItem struct {
	ID              int32 `json:"id"`
	RentalID        int32 `json:"rental_id"`
	ProductID       int32 `json:"product_id"`
	Duration        int32 `json:"duration"`
	DailyPriceCents int32 `json:"daily_price_cents"`
	FinalPriceCents int32 `json:"final_price_cents"`
}

// NewRentalRequest is the input of the booking flow.
type NewRentalRequest struct {
	Customer Customer            `json:"customer"`
	Items    []NewRentalItemLine `json:"items"`
}

type NewRentalItemLine struct {
	ProductID int32 `json:"product_id"`
	Duration  int32 `json:"duration"`
}

// SearchCriteria holds the optional rental lookup keys. Only the first
// non-empty one, in field order, is used.
type SearchCriteria struct {
	Code        string
	LastName    string
	PhoneNumber string
}

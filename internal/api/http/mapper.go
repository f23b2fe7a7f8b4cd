package http

import (
	"time"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/utils"
)

type rentalResponse struct {
	ID              int32               `json:"id"`
	CustomerID      int32               `json:"customer_id"`
	Code            string              `json:"code"`
	StartDate       *string             `json:"start_date"`
	EndDate         *string             `json:"end_date"`
	Status          string              `json:"status"`
	TotalPriceCents int32               `json:"total_price_cents"`
	Items           []domain.RentalItem `json:"items,omitempty"`
}

// rentalRequest is the body of the administrative create and update routes
type rentalRequest struct {
	CustomerID      int32  `json:"customer_id"`
	Code            string `json:"code"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`
	TotalPriceCents *int32 `json:"total_price_cents"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Employee    *domain.Employee `json:"employee"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := utils.FormatDate(*t)
	return &s
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return nil, domain.InvalidArgument("%s must be formatted as YYYY-MM-DD", field)
	}
	return &t, nil
}

func MapRentalToResponse(r *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		Code:            r.Code,
		StartDate:       formatDate(r.StartDate),
		EndDate:         formatDate(r.EndDate),
		Status:          string(r.Status),
		TotalPriceCents: r.TotalPriceCents,
		Items:           r.Items,
	}
}

func MapRentalsToResponse(rentals []domain.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, MapRentalToResponse(&rentals[i]))
	}
	return out
}

// toDomain copies the request fields as given. A missing total becomes zero.
func (req rentalRequest) toDomain(id int32) (*domain.Rental, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ID:         id,
		CustomerID: req.CustomerID,
		Code:       req.Code,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.RentalStatus(req.Status),
	}
	if req.TotalPriceCents != nil {
		rental.TotalPriceCents = *req.TotalPriceCents
	}
	return rental, nil
}

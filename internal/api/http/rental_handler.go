package http

import (
	"net/http"

	"mountainride-backend/internal/domain"
)

func (h *Handlers) StartRental(w http.ResponseWriter, r *http.Request) {
	var req domain.NewRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.Rentals.StartRental(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapRentalToResponse(rental))
}

func (h *Handlers) FinishRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.Rentals.FinishRental(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalToResponse(rental))
}

func (h *Handlers) SearchRentals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rentals, err := h.Rentals.Search(r.Context(), domain.SearchCriteria{
		Code:        q.Get("code"),
		LastName:    q.Get("lastName"),
		PhoneNumber: q.Get("phoneNumber"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalsToResponse(rentals))
}

func (h *Handlers) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.Rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalsToResponse(rentals))
}

func (h *Handlers) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.Rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalToResponse(rental))
}

func (h *Handlers) ListItemsOfRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.Rentals.ListRentalItems(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := req.toDomain(0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Rentals.CreateRental(r.Context(), rental); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapRentalToResponse(rental))
}

func (h *Handlers) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req rentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := req.toDomain(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Rentals.UpdateRental(r.Context(), rental); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalToResponse(rental))
}

func (h *Handlers) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListRentalsOfCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rentals, err := h.Rentals.ListRentalsByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalsToResponse(rentals))
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/service"
)

// Handlers bundles the services the REST routes dispatch to
type Handlers struct {
	Auth          service.AuthService
	Rentals       service.RentalService
	Customers     service.CustomerService
	ProductTypes  service.ProductTypeService
	Products      service.ProductService
	ProductPrices service.ProductPriceService
	RentalItems   service.RentalItemService
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.InvalidArgument("malformed request body: %v", err)
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.InvalidArgument("invalid id %q", raw)
	}
	return int32(id), nil
}

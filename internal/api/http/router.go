package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"mountainride-backend/internal/security"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

const idPattern = "{id:[0-9]+}"

// NewRouter registers every REST route under /api behind the request-id,
// recovery, logging and auth middleware.
func NewRouter(h *Handlers, tokens security.TokenManager, db Pinger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, Recovery, Logging, NewAuthMiddleware(tokens).Handler)

	router.HandleFunc("/healthz", healthz(db)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	api.HandleFunc("/rental", h.ListRentals).Methods(http.MethodGet)
	api.HandleFunc("/rental", h.CreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rental/start", h.StartRental).Methods(http.MethodPost)
	api.HandleFunc("/rental/search", h.SearchRentals).Methods(http.MethodGet)
	api.HandleFunc("/rental/"+idPattern, h.GetRental).Methods(http.MethodGet)
	api.HandleFunc("/rental/"+idPattern, h.UpdateRental).Methods(http.MethodPut)
	api.HandleFunc("/rental/"+idPattern, h.DeleteRental).Methods(http.MethodDelete)
	api.HandleFunc("/rental/"+idPattern+"/items", h.ListItemsOfRental).Methods(http.MethodGet)
	api.HandleFunc("/rental/"+idPattern+"/finish", h.FinishRental).Methods(http.MethodPut)

	registerResource(api, "/customer", h.customers())
	api.HandleFunc("/customer/"+idPattern+"/rentals", h.ListRentalsOfCustomer).Methods(http.MethodGet)

	registerResource(api, "/product-type", h.productTypes())
	api.HandleFunc("/product-type/"+idPattern+"/products", h.ListProductsOfType).Methods(http.MethodGet)

	registerResource(api, "/product", h.products())
	api.HandleFunc("/product/"+idPattern+"/prices", h.ListPricesOfProduct).Methods(http.MethodGet)

	registerResource(api, "/product-price", h.productPrices())
	registerResource(api, "/rental-item", h.rentalItems())

	return router
}

func registerResource[T any](r *mux.Router, base string, res resource[T]) {
	r.HandleFunc(base, res.List).Methods(http.MethodGet)
	r.HandleFunc(base, res.Create).Methods(http.MethodPost)
	r.HandleFunc(base+"/"+idPattern, res.Get).Methods(http.MethodGet)
	r.HandleFunc(base+"/"+idPattern, res.Update).Methods(http.MethodPut)
	r.HandleFunc(base+"/"+idPattern, res.Delete).Methods(http.MethodDelete)
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

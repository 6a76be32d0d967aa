package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all handlers. Everything under /api/v1 except login needs a
// valid session; the /admin subtree additionally needs an Admin category.
func NewRouter(auth *AuthHandler, rental *RentalHandler, admin *AdminHandler, mw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)

	session := api.NewRoute().Subrouter()
	session.Use(mw.Handler)
	session.HandleFunc("/items", rental.ListItems).Methods(http.MethodGet)
	session.HandleFunc("/items/{name}/rent", rental.Rent).Methods(http.MethodPost)
	session.HandleFunc("/items/{name}/return", rental.Return).Methods(http.MethodPost)
	session.HandleFunc("/rentals", rental.MyHistory).Methods(http.MethodGet)

	session.HandleFunc("/admin/rentals", RequireAdmin(rental.FullHistory)).Methods(http.MethodGet)
	session.HandleFunc("/admin/items", RequireAdmin(admin.CreateItem)).Methods(http.MethodPost)
	session.HandleFunc("/admin/items/{name}", RequireAdmin(admin.DeleteItem)).Methods(http.MethodDelete)
	session.HandleFunc("/admin/users", RequireAdmin(admin.CreateUser)).Methods(http.MethodPost)
	session.HandleFunc("/admin/users", RequireAdmin(admin.ListUsers)).Methods(http.MethodGet)

	return r
}

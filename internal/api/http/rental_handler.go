package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/service"
)

type RentalHandler struct {
	rental service.RentalService
}

func NewRentalHandler(rental service.RentalService) *RentalHandler {
	return &RentalHandler{rental: rental}
}

// itemView is the read model for the catalog: derived stock instead of the
// raw holder list.
type itemView struct {
	Name               string `json:"name"`
	MaxStock           int    `json:"max_stock"`
	CurrentStock       int    `json:"current_stock"`
	BaseFeeCents       int64  `json:"base_fee_cents"`
	DepositCents       int64  `json:"deposit_cents"`
	ReturnDeadlineDays int    `json:"return_deadline_days"`
}

func viewOf(item domain.Item) itemView {
	return itemView{
		Name:               item.Name,
		MaxStock:           item.MaxStock,
		CurrentStock:       item.CurrentStock(),
		BaseFeeCents:       item.BaseFeeCents,
		DepositCents:       item.DepositCents,
		ReturnDeadlineDays: item.ReturnDeadlineDays,
	}
}

func (h *RentalHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items := h.rental.ListItems(r.Context())
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item))
	}
	respondJSON(w, http.StatusOK, r.Method, "/items", views)
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/items/rent"))
	defer timer.ObserveDuration()

	claims := ClaimsFrom(r.Context())
	itemName := mux.Vars(r)["name"]

	outcome, err := h.rental.Rent(r.Context(), claims.UserID, itemName)
	if err != nil {
		rentalOpsTotal.WithLabelValues("rent", "failure").Inc()
		respondError(w, statusForError(err), err.Error(), r.Method, "/items/rent")
		return
	}

	rentalOpsTotal.WithLabelValues("rent", "success").Inc()
	respondJSON(w, http.StatusCreated, r.Method, "/items/rent", outcome)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/items/return"))
	defer timer.ObserveDuration()

	claims := ClaimsFrom(r.Context())
	itemName := mux.Vars(r)["name"]

	settlement, err := h.rental.Return(r.Context(), claims.UserID, itemName)
	if err != nil {
		rentalOpsTotal.WithLabelValues("return", "failure").Inc()
		respondError(w, statusForError(err), err.Error(), r.Method, "/items/return")
		return
	}

	rentalOpsTotal.WithLabelValues("return", "success").Inc()
	respondJSON(w, http.StatusOK, r.Method, "/items/return", settlement)
}

// MyHistory lists the calling user's rental records, newest first.
func (h *RentalHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	records := h.rental.ListUserHistory(r.Context(), claims.UserID)
	respondJSON(w, http.StatusOK, r.Method, "/rentals", newestFirst(records))
}

// FullHistory lists every rental record; admin only.
func (h *RentalHandler) FullHistory(w http.ResponseWriter, r *http.Request) {
	records := h.rental.ListHistory(r.Context())
	respondJSON(w, http.StatusOK, r.Method, "/admin/rentals", newestFirst(records))
}

func newestFirst(records []domain.RentalRecord) []domain.RentalRecord {
	out := make([]domain.RentalRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/service"
)

type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type createItemRequest struct {
	Name               string `json:"name"`
	MaxStock           int    `json:"max_stock"`
	BaseFeeCents       int64  `json:"base_fee_cents"`
	DepositCents       int64  `json:"deposit_cents"`
	ReturnDeadlineDays int    `json:"return_deadline_days"`
}

func (h *AdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", r.Method, "/admin/items")
		return
	}

	item := domain.NewItem(req.Name, req.MaxStock, req.BaseFeeCents, req.DepositCents, req.ReturnDeadlineDays)
	if err := h.admin.CreateItem(r.Context(), item); err != nil {
		respondError(w, statusForError(err), err.Error(), r.Method, "/admin/items")
		return
	}
	respondJSON(w, http.StatusCreated, r.Method, "/admin/items", viewOf(*item))
}

func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := h.admin.DeleteItem(r.Context(), name); err != nil {
		respondError(w, statusForError(err), err.Error(), r.Method, "/admin/items")
		return
	}
	respondJSON(w, http.StatusNoContent, r.Method, "/admin/items", nil)
}

type createUserRequest struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Category domain.UserCategory `json:"category"`
	Password string              `json:"password"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", r.Method, "/admin/users")
		return
	}

	user, err := h.admin.CreateUser(r.Context(), req.ID, req.Name, req.Category, req.Password)
	if err != nil {
		respondError(w, statusForError(err), err.Error(), r.Method, "/admin/users")
		return
	}
	respondJSON(w, http.StatusCreated, r.Method, "/admin/users", user)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error(), r.Method, "/admin/users")
		return
	}
	respondJSON(w, http.StatusOK, r.Method, "/admin/users", users)
}

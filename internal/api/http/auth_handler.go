package http

import (
	"encoding/json"
	"net/http"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/policy"
	"campusrent-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string              `json:"token"`
	UserID    string              `json:"user_id"`
	Name      string              `json:"name"`
	Category  domain.UserCategory `json:"category"`
	FeePolicy string              `json:"fee_policy"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", r.Method, "/auth/login")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		respondError(w, statusForError(err), err.Error(), r.Method, "/auth/login")
		return
	}

	// The discount policy is fixed per session from the user's category.
	respondJSON(w, http.StatusOK, r.Method, "/auth/login", loginResponse{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Category:  user.Category,
		FeePolicy: policy.SelectDiscount(user.Category).Name(),
	})
}

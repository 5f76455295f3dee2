package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ayonpaul8906/trustbridge-new/internal/auth"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

type UserHandler struct {
	service   *service.UserService
	verifier  *auth.TokenVerifier
	validator *validator.Validate
}

func NewUserHandler(service *service.UserService, verifier *auth.TokenVerifier) *UserHandler {
	return &UserHandler{
		service:   service,
		verifier:  verifier,
		validator: validator.New(),
	}
}

// VerifyToken handles POST /auth/verify
func (h *UserHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		response.BadRequest(w, "Token required", err)
		return
	}

	uid, err := h.verifier.Verify(req.Token)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	response.Success(w, map[string]string{"status": "success", "uid": uid})
}

// GetProfile handles GET /user/profile/{uid}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	user, err := h.service.GetProfile(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, user)
}

// UpdateProfile handles POST /user/profile/{uid}
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Invalid profile fields", err)
		return
	}

	if err := h.service.UpdateProfile(r.Context(), uid, &req); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"status": "profile updated"})
}

// GetTrustScore handles GET /user/trust-score/{uid}
func (h *UserHandler) GetTrustScore(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	score, err := h.service.GetTrustScore(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, score)
}

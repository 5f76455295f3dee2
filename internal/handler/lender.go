package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

type LenderHandler struct {
	service   *service.LenderService
	validator *validator.Validate
}

func NewLenderHandler(service *service.LenderService) *LenderHandler {
	return &LenderHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Register handles POST /lender/register
func (h *LenderHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterLenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "UID is required", err)
		return
	}

	profile, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, profile)
}

// PostOffer handles POST /lender/offer
func (h *LenderHandler) PostOffer(w http.ResponseWriter, r *http.Request) {
	var req domain.PostOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Missing required fields", err)
		return
	}

	offer, err := h.service.PostOffer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, offer)
}

// ListOffers handles GET /lender/offers/{uid}
func (h *LenderHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	offers, err := h.service.ListOffers(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, offers)
}

// ListBorrowers handles GET /lender/borrowers
func (h *LenderHandler) ListBorrowers(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.service.ListBorrowers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, borrowers)
}

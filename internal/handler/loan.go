package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

type LoanHandler struct {
	service   *service.LoanService
	validator *validator.Validate
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateLoan handles POST /loan/request
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Missing required fields", err)
		return
	}

	loan, err := h.service.CreateLoan(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, domain.CreateLoanResponse{
		LoanID: loan.LoanID,
		Status: loan.Status,
	})
}

// ListUserLoans handles GET /loan/user/{uid}
func (h *LoanHandler) ListUserLoans(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	loans, err := h.service.ListLoans(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, loans)
}

// LoanStatus handles GET /loan/status/{uid}/{loanId}
func (h *LoanHandler) LoanStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	status, err := h.service.GetStatus(r.Context(), vars["uid"], vars["loanId"], time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, status)
}

// Decide handles POST /loan/decision/{uid}/{loanId}
func (h *LoanHandler) Decide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req domain.LoanDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.service.Decide(r.Context(), vars["uid"], vars["loanId"], req.Decision); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"message": "Loan " + vars["loanId"] + " has been " + req.Decision,
	})
}

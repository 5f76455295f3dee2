package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/tests/mocks"
)

func newLoanTestRouter(loanRepo *mocks.MockLoanRepository) *mux.Router {
	cfg := &config.Config{
		Business: config.BusinessConfig{
			LoanTermDays:     30,
			PenaltyDailyRate: "0.005",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewLoanService(loanRepo, new(mocks.MockUserRepository), new(mocks.MockMailer), cfg, logger)
	h := NewLoanHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/loan/request", h.CreateLoan).Methods(http.MethodPost)
	router.HandleFunc("/loan/user/{uid}", h.ListUserLoans).Methods(http.MethodGet)
	router.HandleFunc("/loan/status/{uid}/{loanId}", h.LoanStatus).Methods(http.MethodGet)
	router.HandleFunc("/loan/decision/{uid}/{loanId}", h.Decide).Methods(http.MethodPost)
	return router
}

func TestCreateLoanEndpoint(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	loanRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Loan")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"uid":     "user-1",
		"amount":  10000,
		"purpose": "education",
		"wallet":  "0xdef",
	})

	req := httptest.NewRequest(http.MethodPost, "/loan/request", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                      `json:"success"`
		Data    domain.CreateLoanResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.LoanID)
	assert.Equal(t, domain.LoanStatusPending, envelope.Data.Status)
}

func TestCreateLoanEndpoint_MissingFields(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	req := httptest.NewRequest(http.MethodPost, "/loan/request", bytes.NewReader([]byte(`{"uid":"user-1"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	loanRepo.AssertNotCalled(t, "Create")
}

func TestCreateLoanEndpoint_NegativeAmount(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	body := []byte(`{"uid":"user-1","amount":-100,"purpose":"x","wallet":"0xdef"}`)
	req := httptest.NewRequest(http.MethodPost, "/loan/request", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	loanRepo.AssertNotCalled(t, "Create")
}

func TestLoanStatusEndpoint_NotFound(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	loanRepo.On("GetByLoanID", mock.Anything, "user-1", "missing").Return(nil, sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/loan/status/user-1/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecideEndpoint_InvalidDecision(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	body := []byte(`{"decision":"maybe"}`)
	req := httptest.NewRequest(http.MethodPost, "/loan/decision/user-1/loan-1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideEndpoint_Conflict(t *testing.T) {
	loanRepo := new(mocks.MockLoanRepository)
	router := newLoanTestRouter(loanRepo)

	loan := &domain.Loan{
		LoanID: "loan-1",
		UserID: "user-1",
		Amount: decimal.NewFromInt(10000),
		Status: domain.LoanStatusApproved,
	}
	loanRepo.On("GetByLoanID", mock.Anything, "user-1", "loan-1").Return(loan, nil)

	body := []byte(`{"decision":"rejected"}`)
	req := httptest.NewRequest(http.MethodPost, "/loan/decision/user-1/loan-1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

type OTPHandler struct {
	service *service.OTPService
}

func NewOTPHandler(service *service.OTPService) *OTPHandler {
	return &OTPHandler{service: service}
}

// Send handles POST /send-otp
func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		response.BadRequest(w, "Email required", err)
		return
	}

	if err := h.service.Send(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "OTP sent"})
}

// Verify handles POST /verify-otp
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.OTP == "" {
		response.BadRequest(w, "Email and OTP required", err)
		return
	}

	if err := h.service.Verify(r.Context(), req.Email, req.OTP); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "OTP verified"})
}

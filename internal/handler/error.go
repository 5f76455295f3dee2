package handler

import (
	"errors"
	"net/http"

	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

// writeError maps business error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if errors.As(err, &businessErr) {
		switch businessErr.Code {
		case customError.ErrCodeValidation,
			customError.ErrCodeInvalidLoanAmount,
			customError.ErrCodeInvalidDecision,
			customError.ErrCodeInvalidDateRange:
			response.BadRequest(w, businessErr.Message, businessErr.Err)
		case customError.ErrCodeLoanAlreadyDecided:
			response.Error(w, http.StatusConflict, businessErr.Message, businessErr.Err)
		case customError.ErrCodeUserNotFound, customError.ErrCodeLoanNotFound:
			response.NotFound(w, businessErr.Message)
		case customError.ErrCodeEvidenceMismatch:
			response.Forbidden(w, businessErr.Message)
		default:
			response.InternalServerError(w, businessErr.Message, businessErr.Err)
		}
		return
	}

	if errors.Is(err, customError.ErrInvalidOTP) {
		response.BadRequest(w, "Invalid OTP", err)
		return
	}

	response.InternalServerError(w, "Internal server error", err)
}

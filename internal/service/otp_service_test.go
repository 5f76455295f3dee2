package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/tests/mocks"
)

func newOTPService(t *testing.T) (*OTPService, redismock.ClientMock, *mocks.MockMailer) {
	t.Helper()
	client, redisMock := redismock.NewClientMock()
	mailer := new(mocks.MockMailer)
	cfg := &config.Config{
		Business: config.BusinessConfig{
			OTPLength: 6,
			OTPTTL:    "5m",
		},
	}
	return NewOTPService(client, mailer, cfg), redisMock, mailer
}

func TestOTPSend(t *testing.T) {
	svc, redisMock, mailer := newOTPService(t)

	redisMock.Regexp().ExpectSet("otp:user@example.com", `^\d{6}$`, 5*time.Minute).SetVal("OK")
	mailer.On("Send", "user@example.com", mock.Anything, mock.Anything).Return(nil)

	err := svc.Send(context.Background(), "user@example.com")
	require.NoError(t, err)

	assert.NoError(t, redisMock.ExpectationsWereMet())
	mailer.AssertExpectations(t)
}

func TestOTPVerify(t *testing.T) {
	svc, redisMock, _ := newOTPService(t)

	redisMock.ExpectGet("otp:user@example.com").SetVal("123456")
	redisMock.ExpectDel("otp:user@example.com").SetVal(1)

	err := svc.Verify(context.Background(), "user@example.com", "123456")
	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestOTPVerify_WrongCode(t *testing.T) {
	svc, redisMock, _ := newOTPService(t)

	redisMock.ExpectGet("otp:user@example.com").SetVal("123456")

	err := svc.Verify(context.Background(), "user@example.com", "654321")
	assert.ErrorIs(t, err, customError.ErrInvalidOTP)
}

func TestOTPVerify_ExpiredCode(t *testing.T) {
	svc, redisMock, _ := newOTPService(t)

	redisMock.ExpectGet("otp:user@example.com").RedisNil()

	err := svc.Verify(context.Background(), "user@example.com", "123456")
	assert.ErrorIs(t, err, customError.ErrInvalidOTP)
}

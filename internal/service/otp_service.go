package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/gateway"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

const otpKeyPrefix = "otp:"

// OTPService issues and verifies one-time email codes. Codes live in
// Redis under a TTL, one live code per address; a resend overwrites the
// previous code so the keyspace stays bounded by the number of addresses.
type OTPService struct {
	redis  *redis.Client
	mailer gateway.Mailer
	ttl    time.Duration
	length int
}

func NewOTPService(redisClient *redis.Client, mailer gateway.Mailer, cfg *config.Config) *OTPService {
	return &OTPService{
		redis:  redisClient,
		mailer: mailer,
		ttl:    cfg.GetOTPTTL(),
		length: cfg.Business.OTPLength,
	}
}

// Send generates a fresh code, stores it with the configured TTL and mails it.
func (s *OTPService) Send(ctx context.Context, email string) error {
	code, err := s.generateCode()
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, otpKeyPrefix+email, code, s.ttl).Err(); err != nil {
		return customError.WrapCacheError(err)
	}

	body := fmt.Sprintf("Your OTP is: %s", code)
	return s.mailer.Send(email, "Your TrustBridge OTP", body)
}

// Verify consumes the stored code: a correct code is deleted so it cannot
// be replayed, a wrong or expired one returns ErrInvalidOTP.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	key := otpKeyPrefix + email

	stored, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return customError.ErrInvalidOTP
	}
	if err != nil {
		return customError.WrapCacheError(err)
	}

	if stored != code {
		return customError.ErrInvalidOTP
	}

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return customError.WrapCacheError(err)
	}

	return nil
}

func (s *OTPService) generateCode() (string, error) {
	digits := make([]byte, s.length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

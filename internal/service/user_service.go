package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

const trustScoreCachePrefix = "trust-score:"

// UserService serves profiles and trust score reads.
type UserService struct {
	userRepo repository.UserRepository
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		redis:    redisClient,
		cacheTTL: cfg.GetTrustScoreCacheTTL(),
		logger:   logger,
	}
}

// GetProfile returns a user's stored profile.
func (s *UserService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.userRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapUserNotFound(uid)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return user, nil
}

// UpdateProfile merge-writes the provided fields.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, req *domain.UpdateProfileRequest) error {
	if err := s.userRepo.UpsertProfile(ctx, uid, req); err != nil {
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// GetTrustScore returns both dimensions and their histories, cached briefly.
func (s *UserService) GetTrustScore(ctx context.Context, uid string) (*domain.TrustScoreResponse, error) {
	cacheKey := trustScoreCachePrefix + uid

	if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		var response domain.TrustScoreResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	user, err := s.userRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapUserNotFound(uid)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	response := &domain.TrustScoreResponse{
		IdentityScore:       user.IdentityScore,
		FinancialScore:      user.FinancialScore,
		IdentityVerifiedAt:  user.IdentityVerifiedAt,
		FinancialVerifiedAt: user.FinancialVerifiedAt,
		IdentityHistory:     user.IdentityHistory,
		FinancialHistory:    user.FinancialHistory,
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := s.redis.Set(ctx, cacheKey, string(payload), s.cacheTTL).Err(); err != nil {
			s.logger.Warn("trust score cache write failed", "uid", uid, "error", err)
		}
	}

	return response, nil
}

// Invalidate drops the cached trust score after a dimension write so the
// next read sees the fresh value instead of waiting out the TTL. Best
// effort: a failed delete only extends staleness until expiry.
func (s *UserService) Invalidate(ctx context.Context, uid string) {
	if err := s.redis.Del(ctx, trustScoreCachePrefix+uid).Err(); err != nil {
		s.logger.Warn("trust score cache invalidation failed", "uid", uid, "error", err)
	}
}

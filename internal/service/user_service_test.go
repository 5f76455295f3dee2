package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/tests/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepository, redismock.ClientMock) {
	t.Helper()
	client, redisMock := redismock.NewClientMock()
	userRepo := new(mocks.MockUserRepository)
	cfg := &config.Config{
		Business: config.BusinessConfig{TrustScoreCacheTTL: "1m"},
	}
	return NewUserService(userRepo, client, cfg, testLogger()), userRepo, redisMock
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	userRepo.On("Get", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, customError.ErrUserNotFound)
}

func TestGetTrustScore_CacheMissReadsRepositoryAndCaches(t *testing.T) {
	svc, userRepo, redisMock := newUserService(t)

	identity := 80
	user := &domain.User{
		UID:           "user-1",
		IdentityScore: &identity,
		IdentityHistory: domain.HistoryEntries{
			{Score: 80, Reason: "Identity verification completed.", Date: "2026-08-01T10:00:00Z"},
		},
	}

	redisMock.ExpectGet("trust-score:user-1").RedisNil()
	userRepo.On("Get", mock.Anything, "user-1").Return(user, nil)
	redisMock.Regexp().ExpectSet("trust-score:user-1", `.*identity_score.*`, time.Minute).SetVal("OK")

	resp, err := svc.GetTrustScore(context.Background(), "user-1")
	require.NoError(t, err)

	require.NotNil(t, resp.IdentityScore)
	assert.Equal(t, 80, *resp.IdentityScore)
	assert.Nil(t, resp.FinancialScore)
	assert.Len(t, resp.IdentityHistory, 1)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetTrustScore_CacheHitSkipsRepository(t *testing.T) {
	svc, userRepo, redisMock := newUserService(t)

	identity := 95
	cached, err := json.Marshal(&domain.TrustScoreResponse{IdentityScore: &identity})
	require.NoError(t, err)

	redisMock.ExpectGet("trust-score:user-1").SetVal(string(cached))

	resp, err := svc.GetTrustScore(context.Background(), "user-1")
	require.NoError(t, err)

	require.NotNil(t, resp.IdentityScore)
	assert.Equal(t, 95, *resp.IdentityScore)
	userRepo.AssertNotCalled(t, "Get")
}

func TestInvalidate_DropsCachedTrustScore(t *testing.T) {
	svc, _, redisMock := newUserService(t)

	redisMock.ExpectDel("trust-score:user-1").SetVal(1)

	svc.Invalidate(context.Background(), "user-1")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetTrustScore_UserNotFound(t *testing.T) {
	svc, userRepo, redisMock := newUserService(t)

	redisMock.ExpectGet("trust-score:missing").RedisNil()
	userRepo.On("Get", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	_, err := svc.GetTrustScore(context.Background(), "missing")
	assert.ErrorIs(t, err, customError.ErrUserNotFound)
}

package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
	"github.com/ayonpaul8906/trustbridge-new/tests/mocks"
)

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(_ context.Context, uid string) {
	c.invalidated = append(c.invalidated, uid)
}

func TestAggregatorRecord_InvalidatesCacheAfterWrite(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	cache := &recordingCache{}
	aggregator := NewAggregator(userRepo, cache)

	userRepo.On("RecordTrustScore", mock.Anything, "user-1", domain.DimensionIdentity, 80, mock.Anything).Return(nil)

	err := aggregator.Record(context.Background(), "user-1", domain.DimensionIdentity, 80, "Identity verification completed.")
	require.NoError(t, err)

	assert.Equal(t, []string{"user-1"}, cache.invalidated)
	userRepo.AssertExpectations(t)
}

func TestAggregatorRecord_FailedWriteLeavesCacheAlone(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	cache := &recordingCache{}
	aggregator := NewAggregator(userRepo, cache)

	userRepo.On("RecordTrustScore", mock.Anything, "user-1", domain.DimensionFinancial, 40, mock.Anything).
		Return(errors.New("connection reset"))

	err := aggregator.Record(context.Background(), "user-1", domain.DimensionFinancial, 40, "Bank statements evaluated.")

	var businessErr *customError.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, customError.ErrCodeDatabaseError, businessErr.Code)
	assert.Empty(t, cache.invalidated)
}

func TestAggregatorRecord_NilCache(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	aggregator := NewAggregator(userRepo, nil)

	userRepo.On("RecordTrustScore", mock.Anything, "user-1", domain.DimensionIdentity, 50, mock.Anything).Return(nil)

	err := aggregator.Record(context.Background(), "user-1", domain.DimensionIdentity, 50, "Identity verification completed.")
	assert.NoError(t, err)
}

package scoring

import (
	"context"
	"time"

	"github.com/ayonpaul8906/trustbridge-new/internal/domain"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// ScoreCache invalidates cached trust score reads after a dimension write.
type ScoreCache interface {
	Invalidate(ctx context.Context, uid string)
}

// Aggregator persists dimension scores. Each write merge-updates the
// dimension's current score and appends one history entry; dimensions
// stay independent and no composite is derived.
type Aggregator struct {
	users repository.UserRepository
	cache ScoreCache
}

// NewAggregator builds an Aggregator. cache may be nil when no cached
// reads exist to invalidate.
func NewAggregator(users repository.UserRepository, cache ScoreCache) *Aggregator {
	return &Aggregator{users: users, cache: cache}
}

// Record writes one dimension's score with an append-only history entry
// and drops any cached trust score for the user.
func (a *Aggregator) Record(ctx context.Context, uid, dimension string, score int, reason string) error {
	entry := domain.HistoryEntry{
		Score:  score,
		Reason: reason,
		Date:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := a.users.RecordTrustScore(ctx, uid, dimension, score, entry); err != nil {
		return customError.WrapDatabaseError(err)
	}

	if a.cache != nil {
		a.cache.Invalidate(ctx, uid)
	}

	return nil
}

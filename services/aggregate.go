package services

import (
	"context"
	"fmt"

	"github.com/vin0san/mini-twitter/repositories"
)

// Counts are derived from the edge tables on every read.
type Counts struct {
	Tweets    int64
	Followers int64
	Following int64
}

// Aggregator computes derived counts. Nothing is cached.
type Aggregator struct {
	store *repositories.Store
}

func NewAggregator(store *repositories.Store) *Aggregator {
	return &Aggregator{store: store}
}

// AccountCounts runs one count query per figure. The three counts are not
// read atomically with each other.
func (a *Aggregator) AccountCounts(ctx context.Context, accountID uint) (Counts, error) {
	var c Counts
	var err error
	if c.Tweets, err = a.store.Tweets.CountByOwner(ctx, accountID); err != nil {
		return Counts{}, fmt.Errorf("counting tweets: %w", err)
	}
	if c.Followers, err = a.store.Follows.CountFollowers(ctx, accountID); err != nil {
		return Counts{}, fmt.Errorf("counting followers: %w", err)
	}
	if c.Following, err = a.store.Follows.CountFollowing(ctx, accountID); err != nil {
		return Counts{}, fmt.Errorf("counting following: %w", err)
	}
	return c, nil
}

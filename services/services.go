// Package services implements the account, content, social graph and feed
// operations on top of the repositories.
package services

import (
	"time"

	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/repositories"
)

// Services bundles every service over one store.
type Services struct {
	Accounts *AccountService
	Tweets   *TweetService
	Social   *SocialService
	Feed     *FeedService
	Stats    *Aggregator
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the time source used for tweet timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(store *repositories.Store, tokens *auth.TokenService, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	stats := NewAggregator(store)
	return &Services{
		Accounts: NewAccountService(store, tokens, stats),
		Tweets:   NewTweetService(store, o.now),
		Social:   NewSocialService(store),
		Feed:     NewFeedService(store),
		Stats:    stats,
	}
}

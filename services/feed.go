package services

import (
	"context"
	"fmt"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/repositories"
)

// FeedService answers the timeline queries. Every query filters, joins the
// like counts, orders by created_at then id, and cuts the requested page.
type FeedService struct {
	store *repositories.Store
}

func NewFeedService(store *repositories.Store) *FeedService {
	return &FeedService{store: store}
}

// Timeline returns every tweet.
func (s *FeedService) Timeline(ctx context.Context, page repositories.Page) ([]models.Tweet, error) {
	return s.list(ctx, repositories.TweetFilter{}, page)
}

// OwnTimeline returns the caller's tweets.
func (s *FeedService) OwnTimeline(ctx context.Context, actor auth.Identity, page repositories.Page) ([]models.Tweet, error) {
	return s.list(ctx, repositories.TweetFilter{OwnerID: actor.AccountID}, page)
}

// Search returns tweets containing keyword, ignoring case.
func (s *FeedService) Search(ctx context.Context, keyword string, page repositories.Page) ([]models.Tweet, error) {
	if keyword == "" {
		return nil, apperr.InvalidRequestError("keyword must not be empty")
	}
	return s.list(ctx, repositories.TweetFilter{Keyword: keyword}, page)
}

// Feed returns tweets by the accounts the caller follows. Following nobody
// yields an empty feed.
func (s *FeedService) Feed(ctx context.Context, actor auth.Identity, page repositories.Page) ([]models.Tweet, error) {
	return s.list(ctx, repositories.TweetFilter{FollowedBy: actor.AccountID}, page)
}

func (s *FeedService) list(ctx context.Context, filter repositories.TweetFilter, page repositories.Page) ([]models.Tweet, error) {
	tweets, err := s.store.Tweets.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("listing tweets: %w", err)
	}
	return tweets, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/repositories"
)

type TweetService struct {
	store *repositories.Store
	now   func() time.Time
}

func NewTweetService(store *repositories.Store, now func() time.Time) *TweetService {
	return &TweetService{store: store, now: now}
}

// Create stores a new tweet owned by actor. Its like count starts at 0.
func (s *TweetService) Create(ctx context.Context, actor auth.Identity, content string) (*models.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.InvalidRequestError("content must not be empty")
	}

	tweet := &models.Tweet{
		OwnerID:   actor.AccountID,
		Content:   content,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.store.Tweets.Create(ctx, tweet); err != nil {
		if errors.Is(err, database.ErrForeignKeyViolation) {
			return nil, apperr.NotFoundError("account %d not found", actor.AccountID)
		}
		return nil, fmt.Errorf("creating tweet: %w", err)
	}

	logrus.WithFields(logrus.Fields{"account_id": actor.AccountID, "tweet_id": tweet.ID}).Info("Tweet created")
	return tweet, nil
}

// Get returns one tweet with its like count.
func (s *TweetService) Get(ctx context.Context, id uint) (*models.Tweet, error) {
	tweet, err := s.store.Tweets.FindWithLikes(ctx, id)
	if err != nil {
		return nil, tweetLookupError(id, err)
	}
	return tweet, nil
}

// Update replaces the content of a tweet owned by actor. Existence is checked
// before ownership.
func (s *TweetService) Update(ctx context.Context, actor auth.Identity, id uint, content string) (*models.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.InvalidRequestError("content must not be empty")
	}

	var updated *models.Tweet
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := ownedTweet(ctx, tx, actor, id); err != nil {
			return err
		}
		if err := tx.Tweets.UpdateContent(ctx, id, content); err != nil {
			return tweetLookupError(id, err)
		}
		tweet, err := tx.Tweets.FindWithLikes(ctx, id)
		if err != nil {
			return tweetLookupError(id, err)
		}
		updated = tweet
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"account_id": actor.AccountID, "tweet_id": id}).Info("Tweet updated")
	return updated, nil
}

// Delete removes a tweet owned by actor together with its likes.
func (s *TweetService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := ownedTweet(ctx, tx, actor, id); err != nil {
			return err
		}
		if err := tx.Likes.DeleteByTweet(ctx, id); err != nil {
			return fmt.Errorf("deleting likes of tweet %d: %w", id, err)
		}
		removed, err := tx.Tweets.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting tweet %d: %w", id, err)
		}
		if !removed {
			return apperr.NotFoundError("tweet %d not found", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"account_id": actor.AccountID, "tweet_id": id}).Info("Tweet deleted")
	return nil
}

// Likers returns the accounts that liked a tweet.
func (s *TweetService) Likers(ctx context.Context, id uint) ([]models.User, error) {
	if _, err := s.store.Tweets.FindByID(ctx, id); err != nil {
		return nil, tweetLookupError(id, err)
	}
	users, err := s.store.Users.LikersOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing likers of tweet %d: %w", id, err)
	}
	return users, nil
}

func ownedTweet(ctx context.Context, store *repositories.Store, actor auth.Identity, id uint) (*models.Tweet, error) {
	tweet, err := store.Tweets.FindByID(ctx, id)
	if err != nil {
		return nil, tweetLookupError(id, err)
	}
	if err := AssertOwner(actor, tweet.OwnerID, "tweet"); err != nil {
		return nil, err
	}
	return tweet, nil
}

func tweetLookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundError("tweet %d not found", id)
	}
	return fmt.Errorf("loading tweet %d: %w", id, err)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/repositories"
)

// SocialService manages like and follow edges. Only the initiating account
// can remove an edge.
type SocialService struct {
	store *repositories.Store
}

func NewSocialService(store *repositories.Store) *SocialService {
	return &SocialService{store: store}
}

// Like records that actor likes a tweet. The row is written only after
// the tweet is known to exist and the pair is known to be new; the unique
// index still rejects a concurrent duplicate.
func (s *SocialService) Like(ctx context.Context, actor auth.Identity, tweetID uint) (*models.Like, error) {
	like := &models.Like{UserID: actor.AccountID, TweetID: tweetID}
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := tx.Tweets.FindByID(ctx, tweetID); err != nil {
			return tweetLookupError(tweetID, err)
		}
		liked, err := tx.Likes.Exists(ctx, actor.AccountID, tweetID)
		if err != nil {
			return fmt.Errorf("checking like: %w", err)
		}
		if liked {
			return apperr.AlreadyExistsError("you already liked this tweet")
		}
		return tx.Likes.Create(ctx, like)
	})
	switch {
	case err == nil:
	case errors.Is(err, database.ErrDuplicateKey):
		return nil, apperr.Wrap(err, apperr.AlreadyExists, "you already liked this tweet")
	case errors.Is(err, database.ErrForeignKeyViolation):
		// The tweet or the liking account vanished between the checks and the insert.
		return nil, apperr.Wrap(err, apperr.NotFound, "tweet or account no longer exists")
	default:
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"account_id": actor.AccountID, "tweet_id": tweetID}).Info("Tweet liked")
	return like, nil
}

// Unlike removes actor's like of a tweet.
func (s *SocialService) Unlike(ctx context.Context, actor auth.Identity, tweetID uint) error {
	removed, err := s.store.Likes.Delete(ctx, actor.AccountID, tweetID)
	if err != nil {
		return fmt.Errorf("deleting like: %w", err)
	}
	if !removed {
		return apperr.NotFoundError("like not found")
	}
	return nil
}

// Follow makes actor follow another account.
func (s *SocialService) Follow(ctx context.Context, actor auth.Identity, followedID uint) (*models.Follow, error) {
	if err := assertNotSelf(actor, followedID); err != nil {
		return nil, err
	}

	follow := &models.Follow{FollowerID: actor.AccountID, FollowedID: followedID}
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := tx.Users.FindByID(ctx, followedID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundError("user to follow not found")
			}
			return fmt.Errorf("loading user %d: %w", followedID, err)
		}
		following, err := tx.Follows.Exists(ctx, actor.AccountID, followedID)
		if err != nil {
			return fmt.Errorf("checking follow: %w", err)
		}
		if following {
			return apperr.AlreadyExistsError("you are already following this user")
		}
		return tx.Follows.Create(ctx, follow)
	})
	switch {
	case err == nil:
	case errors.Is(err, database.ErrDuplicateKey):
		return nil, apperr.Wrap(err, apperr.AlreadyExists, "you are already following this user")
	case errors.Is(err, database.ErrCheckViolation):
		return nil, apperr.Wrap(err, apperr.InvalidRequest, "you cannot follow yourself")
	case errors.Is(err, database.ErrForeignKeyViolation):
		return nil, apperr.Wrap(err, apperr.NotFound, "follower or followed account no longer exists")
	default:
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"follower_id": actor.AccountID, "followed_id": followedID}).Info("User followed")
	return follow, nil
}

// Unfollow removes the edge actor -> followedID.
func (s *SocialService) Unfollow(ctx context.Context, actor auth.Identity, followedID uint) error {
	removed, err := s.store.Follows.Delete(ctx, actor.AccountID, followedID)
	if err != nil {
		return fmt.Errorf("deleting follow: %w", err)
	}
	if !removed {
		return apperr.NotFoundError("follow relationship not found")
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/repositories"
)

type AccountService struct {
	store  *repositories.Store
	tokens *auth.TokenService
	stats  *Aggregator
}

// Profile is an account with its live counts.
type Profile struct {
	User   models.User
	Counts Counts
}

func NewAccountService(store *repositories.Store, tokens *auth.TokenService, stats *Aggregator) *AccountService {
	return &AccountService{store: store, tokens: tokens, stats: stats}
}

// Register creates an account. A username taken concurrently is reported by
// the unique index and surfaces as AlreadyExists too.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.InvalidRequestError("username must not be empty")
	}
	if password == "" {
		return nil, apperr.InvalidRequestError("password must not be empty")
	}

	exists, err := s.store.Users.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, apperr.AlreadyExistsError("username already registered")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &models.User{Username: username, HashedPassword: hashed}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, apperr.Wrap(err, apperr.AlreadyExists, "username already registered")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"account_id": user.ID, "username": user.Username}).Info("User registered")
	return user, nil
}

// Login checks credentials and issues a bearer token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.UnauthenticatedError("invalid credentials")
		}
		return "", fmt.Errorf("loading user: %w", err)
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		return "", apperr.UnauthenticatedError("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}
	return token, nil
}

// Profile returns an account and its tweet, follower and following counts.
func (s *AccountService) Profile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundError("user not found")
		}
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}

	counts, err := s.stats.AccountCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, Counts: counts}, nil
}

// Delete removes actor's account with its likes, the likes on its tweets,
// its tweets and its follow edges in both directions.
func (s *AccountService) Delete(ctx context.Context, actor auth.Identity) error {
	id := actor.AccountID
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Likes.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("deleting likes by user: %w", err)
		}
		if err := tx.Likes.DeleteOnTweetsOf(ctx, id); err != nil {
			return fmt.Errorf("deleting likes on tweets: %w", err)
		}
		if err := tx.Tweets.DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("deleting tweets: %w", err)
		}
		if err := tx.Follows.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("deleting follows: %w", err)
		}
		removed, err := tx.Users.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		if !removed {
			return apperr.NotFoundError("user not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("account_id", id).Info("User deleted")
	return nil
}

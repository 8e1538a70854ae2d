package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories over one database handle.
type Store struct {
	db      *gorm.DB
	Users   UserRepository
	Tweets  TweetRepository
	Likes   LikeRepository
	Follows FollowRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:      db,
		Users:   NewUserRepository(db),
		Tweets:  NewTweetRepository(db),
		Likes:   NewLikeRepository(db),
		Follows: NewFollowRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise, including
// on panic.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

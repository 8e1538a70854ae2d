package repositories

import (
	"context"

	"github.com/vin0san/mini-twitter/models"
)

// Lookups return gorm.ErrRecordNotFound when the row is absent. Writes return
// constraint violations translated by database.TranslateError. Delete methods
// report whether a row was removed.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	LikersOf(ctx context.Context, tweetID uint) ([]models.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	FindByID(ctx context.Context, id uint) (*models.Tweet, error)
	FindWithLikes(ctx context.Context, id uint) (*models.Tweet, error)
	List(ctx context.Context, filter TweetFilter, page Page) ([]models.Tweet, error)
	UpdateContent(ctx context.Context, id uint, content string) error
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	Delete(ctx context.Context, id uint) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID uint) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Exists(ctx context.Context, userID, tweetID uint) (bool, error)
	CountByTweet(ctx context.Context, tweetID uint) (int64, error)
	Delete(ctx context.Context, userID, tweetID uint) (bool, error)
	DeleteByTweet(ctx context.Context, tweetID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
	DeleteOnTweetsOf(ctx context.Context, ownerID uint) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, followerID, followedID uint) (bool, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

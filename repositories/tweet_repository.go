package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
)

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	return database.TranslateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(tweet).Error)
}

func (r *tweetRepository) FindByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) FindWithLikes(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.withLikes(ctx).Where("tweets.id = ?", id).Find(&tweets).Error; err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &tweets[0], nil
}

// List returns one page of tweets matching filter, each with its live like count.
func (r *tweetRepository) List(ctx context.Context, filter TweetFilter, page Page) ([]models.Tweet, error) {
	query := r.withLikes(ctx)
	if filter.OwnerID != 0 {
		query = query.Where("tweets.owner_id = ?", filter.OwnerID)
	}
	if filter.FollowedBy != 0 {
		followed := r.db.WithContext(ctx).Model(&models.Follow{}).
			Select("followed_id").
			Where("follower_id = ?", filter.FollowedBy)
		query = query.Where("tweets.owner_id IN (?)", followed)
	}
	if filter.Keyword != "" {
		query = query.Where(`LOWER(tweets.content) LIKE LOWER(?) ESCAPE '\'`, containsPattern(filter.Keyword))
	}
	for _, order := range page.orderBy() {
		query = query.Order(order)
	}

	tweets := []models.Tweet{}
	err := query.Offset(page.Skip).Limit(page.Limit).Find(&tweets).Error
	return tweets, err
}

// withLikes selects tweets left-joined to their likes so that tweets without
// likes count 0.
func (r *tweetRepository) withLikes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Tweet{}).
		Select("tweets.id, tweets.owner_id, tweets.content, tweets.created_at, COUNT(likes.id) AS likes_count").
		Joins("LEFT JOIN likes ON likes.tweet_id = tweets.id").
		Group("tweets.id, tweets.owner_id, tweets.content, tweets.created_at")
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	result := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tweetRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *tweetRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Tweet{}, id)
	return result.RowsAffected > 0, database.TranslateError(result.Error)
}

func (r *tweetRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	return database.TranslateError(r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&models.Tweet{}).Error)
}

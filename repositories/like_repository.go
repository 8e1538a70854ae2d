package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return database.TranslateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(like).Error)
}

func (r *likeRepository) Exists(ctx context.Context, userID, tweetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByTweet(ctx context.Context, tweetID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error
	return count, err
}

// Delete removes userID's like of tweetID. Likes by other users are never touched.
func (r *likeRepository) Delete(ctx context.Context, userID, tweetID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{})
	return result.RowsAffected > 0, database.TranslateError(result.Error)
}

func (r *likeRepository) DeleteByTweet(ctx context.Context, tweetID uint) error {
	return database.TranslateError(r.db.WithContext(ctx).Where("tweet_id = ?", tweetID).Delete(&models.Like{}).Error)
}

func (r *likeRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return database.TranslateError(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Like{}).Error)
}

// DeleteOnTweetsOf removes every like on tweets owned by ownerID.
func (r *likeRepository) DeleteOnTweetsOf(ctx context.Context, ownerID uint) error {
	owned := r.db.WithContext(ctx).Model(&models.Tweet{}).Select("id").Where("owner_id = ?", ownerID)
	return database.TranslateError(r.db.WithContext(ctx).Where("tweet_id IN (?)", owned).Delete(&models.Like{}).Error)
}

package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return database.TranslateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Check if a user exists by username
func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// LikersOf returns the users who liked a tweet, in the order they liked it.
func (r *userRepository) LikersOf(ctx context.Context, tweetID uint) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN likes ON likes.user_id = users.id").
		Where("likes.tweet_id = ?", tweetID).
		Order("likes.id ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	return result.RowsAffected > 0, database.TranslateError(result.Error)
}

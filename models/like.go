package models

// Like records that UserID liked TweetID. At most one per pair.
type Like struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;index;uniqueIndex:idx_likes_user_tweet" json:"user_id"`
	TweetID uint `gorm:"not null;index;uniqueIndex:idx_likes_user_tweet" json:"tweet_id"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tweet Tweet `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}

package models

import "time"

// Tweet is a short text post. CreatedAt is assigned once and is the timeline sort key.
type Tweet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	// LikesCount is not persisted; it is filled by the aggregate queries.
	LikesCount int64 `gorm:"->;-:migration" json:"likes_count"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Tweet) TableName() string {
	return "tweets"
}

package models

import "time"

// User is a registered account. Usernames are case-sensitive and never change.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

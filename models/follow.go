package models

// Follow is a directed edge: FollowerID follows FollowedID.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;index;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowedID uint `gorm:"not null;index;uniqueIndex:idx_follows_pair;check:chk_follows_not_self,follower_id <> followed_id" json:"followed_id"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}

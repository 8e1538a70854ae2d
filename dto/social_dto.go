package dto

import "github.com/vin0san/mini-twitter/models"

type LikeRequest struct {
	TweetID uint `json:"tweet_id"`
}

type LikeDTO struct {
	ID      uint `json:"id"`
	UserID  uint `json:"user_id"`
	TweetID uint `json:"tweet_id"`
}

func NewLikeDTO(l models.Like) LikeDTO {
	return LikeDTO{ID: l.ID, UserID: l.UserID, TweetID: l.TweetID}
}

type FollowRequest struct {
	FollowedID uint `json:"followed_id"`
}

type FollowDTO struct {
	ID         uint `json:"id"`
	FollowerID uint `json:"follower_id"`
	FollowedID uint `json:"followed_id"`
}

func NewFollowDTO(f models.Follow) FollowDTO {
	return FollowDTO{ID: f.ID, FollowerID: f.FollowerID, FollowedID: f.FollowedID}
}

// MessageDTO carries a human readable confirmation
type MessageDTO struct {
	Message string `json:"message"`
}

// ErrorDTO is the body of every error response
type ErrorDTO struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

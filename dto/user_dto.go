package dto

import (
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/services"
)

// Credentials is the JSON body of register and login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username}
}

func NewUserList(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u))
	}
	return out
}

type ProfileDTO struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	TweetCount     int64  `json:"tweet_count"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
}

func NewProfileDTO(p services.Profile) ProfileDTO {
	return ProfileDTO{
		ID:             p.User.ID,
		Username:       p.User.Username,
		TweetCount:     p.Counts.Tweets,
		FollowerCount:  p.Counts.Followers,
		FollowingCount: p.Counts.Following,
	}
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

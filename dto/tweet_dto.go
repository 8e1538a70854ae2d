package dto

import (
	"time"

	"github.com/vin0san/mini-twitter/models"
)

// TweetRequest is the body of create and update requests
type TweetRequest struct {
	Content string `json:"content"`
}

// TweetDTO is a Data Transfer Object for the tweet response
type TweetDTO struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	OwnerID    uint      `json:"owner_id"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewTweetDTO(t models.Tweet) TweetDTO {
	return TweetDTO{
		ID:         t.ID,
		Content:    t.Content,
		OwnerID:    t.OwnerID,
		LikesCount: t.LikesCount,
		CreatedAt:  t.CreatedAt.UTC(),
	}
}

// NewTweetList never returns nil, so an empty page encodes as [].
func NewTweetList(tweets []models.Tweet) []TweetDTO {
	out := make([]TweetDTO, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, NewTweetDTO(t))
	}
	return out
}

package handlers

import (
	"net/http"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/dto"
	"github.com/vin0san/mini-twitter/monitoring"
	"github.com/vin0san/mini-twitter/services"
)

// SocialHandler handles likes and follows
type SocialHandler struct {
	Social *services.SocialService
}

func NewSocialHandler(social *services.SocialService) *SocialHandler {
	return &SocialHandler{Social: social}
}

func (h *SocialHandler) Like(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req dto.LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if req.TweetID == 0 {
		WriteError(w, r, apperr.InvalidRequestError("tweet_id is required"))
		return
	}

	like, err := h.Social.Like(r.Context(), me, req.TweetID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	monitoring.LikesCreated.Inc()
	writeJSON(w, http.StatusOK, dto.NewLikeDTO(*like))
}

func (h *SocialHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	tweetID, err := pathID(r, "tweet_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := h.Social.Unlike(r.Context(), me, tweetID); err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageDTO{Message: "Unliked successfully"})
}

func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req dto.FollowRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if req.FollowedID == 0 {
		WriteError(w, r, apperr.InvalidRequestError("followed_id is required"))
		return
	}

	follow, err := h.Social.Follow(r.Context(), me, req.FollowedID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	monitoring.FollowsCreated.Inc()
	writeJSON(w, http.StatusOK, dto.NewFollowDTO(*follow))
}

func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	followedID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := h.Social.Unfollow(r.Context(), me, followedID); err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageDTO{Message: "Unfollowed successfully"})
}

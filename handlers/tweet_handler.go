package handlers

import (
	"context"
	"net/http"

	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/dto"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/monitoring"
	"github.com/vin0san/mini-twitter/repositories"
	"github.com/vin0san/mini-twitter/services"
)

// TweetHandler handles tweet CRUD and the timeline queries
type TweetHandler struct {
	Tweets *services.TweetService
	Feed   *services.FeedService
}

func NewTweetHandler(tweets *services.TweetService, feed *services.FeedService) *TweetHandler {
	return &TweetHandler{Tweets: tweets, Feed: feed}
}

func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req dto.TweetRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	tweet, err := h.Tweets.Create(r.Context(), me, req.Content)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	monitoring.TweetsPosted.Inc()
	writeJSON(w, http.StatusCreated, dto.NewTweetDTO(*tweet))
}

func (h *TweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	tweet, err := h.Tweets.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewTweetDTO(*tweet))
}

func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req dto.TweetRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	tweet, err := h.Tweets.Update(r.Context(), me, id, req.Content)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewTweetDTO(*tweet))
}

func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := h.Tweets.Delete(r.Context(), me, id); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TweetHandler) Likers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	users, err := h.Tweets.Likers(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserList(users))
}

// List serves the global timeline.
func (h *TweetHandler) List(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, h.Feed.Timeline)
}

func (h *TweetHandler) Mine(w http.ResponseWriter, r *http.Request) {
	h.serveActorPage(w, r, h.Feed.OwnTimeline)
}

func (h *TweetHandler) Personal(w http.ResponseWriter, r *http.Request) {
	h.serveActorPage(w, r, h.Feed.Feed)
}

func (h *TweetHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	h.servePage(w, r, func(ctx context.Context, page repositories.Page) ([]models.Tweet, error) {
		return h.Feed.Search(ctx, keyword, page)
	})
}

type pageQuery func(ctx context.Context, page repositories.Page) ([]models.Tweet, error)

func (h *TweetHandler) servePage(w http.ResponseWriter, r *http.Request, query pageQuery) {
	page, err := pageFromQuery(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	tweets, err := query(r.Context(), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewTweetList(tweets))
}

func (h *TweetHandler) serveActorPage(w http.ResponseWriter, r *http.Request, query func(context.Context, auth.Identity, repositories.Page) ([]models.Tweet, error)) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	h.servePage(w, r, func(ctx context.Context, page repositories.Page) ([]models.Tweet, error) {
		return query(ctx, me, page)
	})
}

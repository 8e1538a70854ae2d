package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/handlers"
	"github.com/vin0san/mini-twitter/monitoring"
)

// Handlers groups the endpoint handlers mounted by SetupRoutes.
type Handlers struct {
	Users  *handlers.UserHandler
	Tweets *handlers.TweetHandler
	Social *handlers.SocialHandler
	System *handlers.SystemHandler
}

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(h Handlers, tokens *auth.TokenService) http.Handler {
	router := mux.NewRouter()
	router.Use(monitoring.InstrumentHandler)

	authed := auth.Middleware(tokens, handlers.WriteError)
	protected := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	// User routes
	router.HandleFunc("/register", h.Users.Register).Methods("POST")
	router.HandleFunc("/login", h.Users.Login).Methods("POST")
	router.Handle("/protected", protected(h.Users.Protected)).Methods("GET")
	router.Handle("/users/me", protected(h.Users.DeleteMe)).Methods("DELETE")
	router.HandleFunc("/users/{id:[0-9]+}", h.Users.Profile).Methods("GET")

	// Tweet routes; the literal paths are registered before /tweets/{id}
	router.Handle("/tweets", protected(h.Tweets.Create)).Methods("POST")
	router.HandleFunc("/tweets", h.Tweets.List).Methods("GET")
	router.Handle("/tweets/me", protected(h.Tweets.Mine)).Methods("GET")
	router.HandleFunc("/tweets/search", h.Tweets.Search).Methods("GET")
	router.HandleFunc("/tweets/{id:[0-9]+}", h.Tweets.Get).Methods("GET")
	router.Handle("/tweets/{id:[0-9]+}", protected(h.Tweets.Update)).Methods("PUT")
	router.Handle("/tweets/{id:[0-9]+}", protected(h.Tweets.Delete)).Methods("DELETE")
	router.HandleFunc("/tweets/{id:[0-9]+}/likes", h.Tweets.Likers).Methods("GET")
	router.Handle("/feed", protected(h.Tweets.Personal)).Methods("GET")

	// Social routes
	router.Handle("/like", protected(h.Social.Like)).Methods("POST")
	router.Handle("/like/{tweet_id:[0-9]+}", protected(h.Social.Unlike)).Methods("DELETE")
	router.Handle("/follow", protected(h.Social.Follow)).Methods("POST")
	router.Handle("/follow/{user_id:[0-9]+}", protected(h.Social.Unfollow)).Methods("DELETE")

	// System routes
	router.HandleFunc("/health", h.System.Health).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.NotFoundHandler = monitoring.InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, r, apperr.NotFoundError("no route for %s", r.URL.Path))
	}))
	router.MethodNotAllowedHandler = monitoring.InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"method_not_allowed","detail":"method not allowed"}` + "\n"))
	}))

	return router
}

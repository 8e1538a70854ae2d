package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/dto"
	"github.com/vin0san/mini-twitter/repositories"
	"github.com/vin0san/mini-twitter/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("Failed to encode response")
	}
}

// WriteError renders err as a JSON error body. Internal errors are logged and
// their reason is not sent to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	detail := apperr.ReasonOf(err)

	if kind == apperr.Internal {
		fields := logrus.Fields{"method": r.Method, "path": r.URL.Path}
		if id, ok := auth.IdentityFromContext(r.Context()); ok {
			fields["account_id"] = id.AccountID
		}
		logrus.WithFields(fields).WithError(err).Error("Request failed")
		detail = "internal server error"
	}
	if kind == apperr.Unauthenticated {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	writeJSON(w, status, dto.ErrorDTO{Error: kind.String(), Detail: detail})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.AlreadyExists:
		return http.StatusConflict
	case apperr.InvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.InvalidRequestError("request body is empty")
		}
		return apperr.Wrap(err, apperr.InvalidRequest, "invalid JSON body")
	}
	return nil
}

// pageFromQuery reads skip, limit and sort. Absent values take their defaults.
func pageFromQuery(r *http.Request) (repositories.Page, error) {
	q := r.URL.Query()
	skip, err := intParam(q.Get("skip"), "skip", 0)
	if err != nil {
		return repositories.Page{}, err
	}
	limit, err := intParam(q.Get("limit"), "limit", services.DefaultLimit)
	if err != nil {
		return repositories.Page{}, err
	}
	return services.NewPage(skip, limit, q.Get("sort"))
}

func intParam(raw, name string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.InvalidRequestError("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

// pathID parses a numeric mux path variable.
func pathID(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.InvalidRequestError("%s must be a positive integer, got %q", name, raw)
	}
	return uint(id), nil
}

// actor returns the identity set by auth.Middleware. Routes that call it are
// always mounted behind the middleware.
func actor(r *http.Request) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return auth.Identity{}, apperr.UnauthenticatedError("missing identity")
	}
	return id, nil
}

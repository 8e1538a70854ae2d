package handlers

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/vin0san/mini-twitter/apperr"
	"github.com/vin0san/mini-twitter/dto"
	"github.com/vin0san/mini-twitter/monitoring"
	"github.com/vin0san/mini-twitter/services"
)

// UserHandler handles account endpoints
type UserHandler struct {
	Accounts *services.AccountService
}

func NewUserHandler(accounts *services.AccountService) *UserHandler {
	return &UserHandler{Accounts: accounts}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds dto.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		WriteError(w, r, err)
		return
	}

	user, err := h.Accounts.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	monitoring.RegisterSuccess.Inc()
	writeJSON(w, http.StatusCreated, dto.NewUserDTO(*user))
}

// Login accepts an OAuth2 password form or a JSON body.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := readCredentials(r)
	if err != nil {
		monitoring.LoginFailure.WithLabelValues("bad request").Inc()
		WriteError(w, r, err)
		return
	}

	token, err := h.Accounts.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		monitoring.LoginFailure.WithLabelValues(apperr.KindOf(err).String()).Inc()
		WriteError(w, r, err)
		return
	}
	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, dto.TokenDTO{AccessToken: token, TokenType: "bearer"})
}

const maxFormMemory = 1 << 20

func readCredentials(r *http.Request) (dto.Credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return dto.Credentials{}, apperr.Wrap(err, apperr.InvalidRequest, "invalid multipart body")
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return dto.Credentials{}, apperr.Wrap(err, apperr.InvalidRequest, "invalid form body")
		}
	default:
		var creds dto.Credentials
		err := decodeJSON(r, &creds)
		return creds, err
	}
	return dto.Credentials{Username: r.PostFormValue("username"), Password: r.PostFormValue("password")}, nil
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	profile, err := h.Accounts.Profile(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewProfileDTO(*profile))
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := h.Accounts.Delete(r.Context(), me); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Protected echoes the verified identity.
func (h *UserHandler) Protected(w http.ResponseWriter, r *http.Request) {
	me, err := actor(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageDTO{
		Message: fmt.Sprintf("Hello user %d, you are authorized!", me.AccountID),
	})
}

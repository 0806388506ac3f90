package social

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=social_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/pkg"
)

type socialApi interface {
	Follow(ctx context.Context, userID, friendID uuid.UUID) error
	Unfollow(ctx context.Context, userID, friendID uuid.UUID) error
	Friends(ctx context.Context, userID uuid.UUID) ([]Friend, error)
	Feed(ctx context.Context, userID uuid.UUID) ([]FeedItem, error)
}

type Handler struct {
	service socialApi
}

func NewHandler(service socialApi) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	socialRouter := mainRouter.PathPrefix("/social").Subrouter()
	socialRouter.HandleFunc("/friends", h.handleFriends).Methods("GET", "OPTIONS").Name("friends")
	socialRouter.HandleFunc("/friends/{friendId}", h.handleFollow).Methods("POST", "OPTIONS").Name("follow")
	socialRouter.HandleFunc("/friends/{friendId}", h.handleUnfollow).Methods("DELETE", "OPTIONS").Name("unfollow")
	socialRouter.HandleFunc("/feed", h.handleFeed).Methods("GET", "OPTIONS").Name("feed")
}

func (h *Handler) handleFollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	friendID, err := uuid.Parse(mux.Vars(r)["friendId"])
	if err != nil {
		http.Error(w, "invalid friend id", http.StatusBadRequest)
		return
	}

	err = h.service.Follow(r.Context(), userID, friendID)
	switch {
	case err == nil:
	case errors.Is(err, ErrSelfFollow):
		http.Error(w, "cannot follow yourself", http.StatusBadRequest)
		return
	case pkg.IsUniqueViolationError(err):
		http.Error(w, "already following", http.StatusConflict)
		return
	case pkg.IsForeignKeyViolationError(err):
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	default:
		log.Errorf("follow %s: %s", friendID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"followed":true}`), http.StatusCreated)
}

func (h *Handler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	friendID, err := uuid.Parse(mux.Vars(r)["friendId"])
	if err != nil {
		http.Error(w, "invalid friend id", http.StatusBadRequest)
		return
	}

	if err := h.service.Unfollow(r.Context(), userID, friendID); err != nil {
		if errors.Is(err, ErrFriendshipNotFound) {
			http.Error(w, "not following", http.StatusNotFound)
			return
		}
		log.Errorf("unfollow %s: %s", friendID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"unfollowed":true}`)
}

func (h *Handler) handleFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	friends, err := h.service.Friends(r.Context(), userID)
	if err != nil {
		log.Errorf("get friends: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if friends == nil {
		friends = []Friend{}
	}

	respBytes, err := json.Marshal(friends)
	if err != nil {
		log.Errorf("marshal friends: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	feed, err := h.service.Feed(r.Context(), userID)
	if err != nil {
		log.Errorf("get feed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if feed == nil {
		feed = []FeedItem{}
	}

	respBytes, err := json.Marshal(feed)
	if err != nil {
		log.Errorf("marshal feed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

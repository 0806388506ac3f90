package sessions

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/internal/telemetry/metrics"
	"github.com/pumpout/backend/pkg"
)

type sessionsApi interface {
	Finish(ctx context.Context, userID, workoutID uuid.UUID) (*Session, error)
	WeeklyActivity(ctx context.Context, userID uuid.UUID) ([]WeeklyEntry, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type Handler struct {
	service        sessionsApi
	metricsManager *metrics.Manager
}

func NewHandler(service sessionsApi, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	sessionsRouter := mainRouter.PathPrefix("/sessions").Subrouter()
	sessionsRouter.HandleFunc("", h.handleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	sessionsRouter.HandleFunc("/weekly", h.handleWeekly).Methods("GET", "OPTIONS").Name("weekly-activity")
	sessionsRouter.HandleFunc("/count", h.handleCount).Methods("GET", "OPTIONS").Name("sessions-count")
}

type FinishRequest struct {
	WorkoutID uuid.UUID `json:"workoutId"`
}

func (h *Handler) handleFinish(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req FinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.WorkoutID == uuid.Nil {
		http.Error(w, "workout id required", http.StatusBadRequest)
		return
	}

	session, err := h.service.Finish(r.Context(), userID, req.WorkoutID)
	if err != nil {
		log.Errorf("finish workout %s: %s", req.WorkoutID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterSessionsFinished.Inc()

	respBytes, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal finished session: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (h *Handler) handleWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.WeeklyActivity(r.Context(), userID)
	if err != nil {
		log.Errorf("get weekly activity: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weekly activity: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	count, err := h.service.Count(r.Context(), userID)
	if err != nil {
		log.Errorf("get sessions count: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"count":%d}`, count))
}

package trainlog

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainlog_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/internal/telemetry/metrics"
	"github.com/pumpout/backend/pkg"
)

type trackerApi interface {
	Save(ctx context.Context, userID, exerciseID uuid.UUID, sets, reps int, weight float64) (*Log, error)
	ResolveWorkout(ctx context.Context, userID, workoutID uuid.UUID) ([]ResolvedExercise, error)
	History(ctx context.Context, userID, exerciseID uuid.UUID) ([]HistoryBar, error)
}

type Handler struct {
	tracker        trackerApi
	metricsManager *metrics.Manager
}

func NewHandler(tracker trackerApi, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		tracker:        tracker,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	logsRouter := mainRouter.PathPrefix("/logs").Subrouter()
	logsRouter.HandleFunc("", h.handleSaveLog).Methods("POST", "OPTIONS").Name("save-log")
	logsRouter.HandleFunc("/workout/{workoutId}", h.handleResolveWorkout).Methods("GET", "OPTIONS").Name("resolve-workout")
	logsRouter.HandleFunc("/history/{exerciseId}", h.handleHistory).Methods("GET", "OPTIONS").Name("log-history")
}

type SaveLogRequest struct {
	ExerciseID uuid.UUID `json:"exerciseId"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
}

func (h *Handler) handleSaveLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SaveLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == uuid.Nil {
		http.Error(w, "exercise id required", http.StatusBadRequest)
		return
	}
	if req.Sets <= 0 || req.Reps <= 0 || req.Weight < 0 {
		http.Error(w, "invalid log values", http.StatusBadRequest)
		return
	}

	saved, err := h.tracker.Save(r.Context(), userID, req.ExerciseID, req.Sets, req.Reps, req.Weight)
	if err != nil {
		log.Errorf("save exercise log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterExerciseLogs.Inc()

	respBytes, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("marshal saved log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (h *Handler) handleResolveWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := uuid.Parse(mux.Vars(r)["workoutId"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	resolved, err := h.tracker.ResolveWorkout(r.Context(), userID, workoutID)
	if err != nil {
		log.Errorf("resolve workout %s exercises: %s", workoutID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if resolved == nil {
		resolved = []ResolvedExercise{}
	}

	respBytes, err := json.Marshal(resolved)
	if err != nil {
		log.Errorf("marshal resolved exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["exerciseId"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	bars, err := h.tracker.History(r.Context(), userID, exerciseID)
	if err != nil {
		log.Errorf("get exercise %s history: %s", exerciseID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if bars == nil {
		bars = []HistoryBar{}
	}

	respBytes, err := json.Marshal(bars)
	if err != nil {
		log.Errorf("marshal exercise history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

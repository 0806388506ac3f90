package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/internal/telemetry/metrics"
	"github.com/pumpout/backend/internal/telemetry/tracing"
	"github.com/pumpout/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_handler_mocks_test.go -package=catalog_test

type editorApi interface {
	Create(ctx context.Context, userID uuid.UUID, params CreateWorkoutParams) (*Workout, error)
	Edit(ctx context.Context, userID, workoutID uuid.UUID, params EditWorkoutParams) error
	Delete(ctx context.Context, userID, workoutID uuid.UUID) error
	Duplicate(ctx context.Context, userID, workoutID uuid.UUID, friendName string) (*Workout, error)
}

type workoutsReadApi interface {
	Get(ctx context.Context, id uuid.UUID) (*Workout, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Workout, error)
	Exercises(ctx context.Context, workoutID uuid.UUID) ([]Exercise, error)
	ExerciseSuggestions(ctx context.Context, userID uuid.UUID) ([]ExerciseSuggestion, error)
}

type WorkoutRequest struct {
	Title      string          `json:"title"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	CategoryID uuid.UUID       `json:"categoryId"`
	DeletedIDs []uuid.UUID     `json:"deletedExerciseIds,omitempty"`
	Exercises  []DraftExercise `json:"exercises"`
}

type DuplicateRequest struct {
	FriendName string `json:"friendName"`
}

type WorkoutsHandler struct {
	editor         editorApi
	repo           workoutsReadApi
	metricsManager *metrics.Manager
}

func NewWorkoutsHandler(
	editor editorApi,
	repo workoutsReadApi,
	metricsManager *metrics.Manager,
) *WorkoutsHandler {
	return &WorkoutsHandler{
		editor:         editor,
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *WorkoutsHandler) SetupRoutes(mainRouter *mux.Router) {
	workoutsRouter := mainRouter.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("workouts-list")
	workoutsRouter.HandleFunc("", handler.handleCreate).Methods("POST", "OPTIONS").Name("workouts-create")
	workoutsRouter.HandleFunc("/covers", handler.handleCovers).Methods("GET", "OPTIONS").Name("workouts-covers")
	workoutsRouter.HandleFunc("/suggestions", handler.handleSuggestions).Methods("GET", "OPTIONS").Name("workouts-suggestions")
	workoutsRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("workouts-get")
	workoutsRouter.HandleFunc("/{id}", handler.handleEdit).Methods("PUT", "OPTIONS").Name("workouts-edit")
	workoutsRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("workouts-delete")
	workoutsRouter.HandleFunc("/{id}/duplicate", handler.handleDuplicate).Methods("POST", "OPTIONS").Name("workouts-duplicate")
}

func (handler *WorkoutsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for %s: %s", userID, err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	if categoryIDParam := r.URL.Query().Get("category_id"); categoryIDParam != "" {
		categoryID, err := uuid.Parse(categoryIDParam)
		if err != nil {
			http.Error(w, "error, invalid category id", http.StatusBadRequest)
			return
		}
		filtered := make([]Workout, 0, len(workouts))
		for _, workout := range workouts {
			if workout.CategoryID == categoryID {
				filtered = append(filtered, workout)
			}
		}
		workouts = filtered
	}

	if workouts == nil {
		workouts = []Workout{}
	}
	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutsJson)
}

func (handler *WorkoutsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.get")
	defer span.End()

	workoutID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	workout, err := handler.repo.Get(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s: %s", workoutID, err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}

	exercises, err := handler.repo.Exercises(ctx, workoutID)
	if err != nil {
		log.Errorf("get workout exercises %s: %s", workoutID, err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}
	workout.Exercises = exercises

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func (handler *WorkoutsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.create")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutReq, ok := handler.decodeWorkoutRequest(w, r)
	if !ok {
		return
	}
	// an edit may drop all exercises, a new workout must come with at least one
	if len(workoutReq.Exercises) == 0 {
		http.Error(w, "error, no exercises", http.StatusBadRequest)
		return
	}

	workout, err := handler.editor.Create(ctx, userID, CreateWorkoutParams{
		Title:      workoutReq.Title,
		ImageURL:   workoutReq.ImageURL,
		CategoryID: workoutReq.CategoryID,
		Drafts:     workoutReq.Exercises,
	})
	if err != nil {
		log.Errorf("create workout for %s: %s", userID, err)
		http.Error(w, "create workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "create workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *WorkoutsHandler) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.edit")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	workoutReq, ok := handler.decodeWorkoutRequest(w, r)
	if !ok {
		return
	}

	if err := handler.editor.Edit(ctx, userID, workoutID, EditWorkoutParams{
		Title:      workoutReq.Title,
		CategoryID: workoutReq.CategoryID,
		DeletedIDs: workoutReq.DeletedIDs,
		Drafts:     workoutReq.Exercises,
	}); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("edit workout %s: %s", workoutID, err)
		http.Error(w, "edit workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "saved")
}

func (handler *WorkoutsHandler) decodeWorkoutRequest(w http.ResponseWriter, r *http.Request) (WorkoutRequest, bool) {
	var workoutReq WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&workoutReq); err != nil {
		log.Tracef("workout request, unmarshal json params: %s", err)
		http.Error(w, "invalid workout request", http.StatusBadRequest)
		return workoutReq, false
	}

	workoutReq.Title = strings.TrimSpace(workoutReq.Title)
	if workoutReq.Title == "" {
		http.Error(w, "error, workout title empty", http.StatusBadRequest)
		return workoutReq, false
	}
	if workoutReq.CategoryID == uuid.Nil {
		http.Error(w, "error, category missing", http.StatusBadRequest)
		return workoutReq, false
	}
	for _, draft := range workoutReq.Exercises {
		if strings.TrimSpace(draft.Name) == "" {
			http.Error(w, "error, exercise name empty", http.StatusBadRequest)
			return workoutReq, false
		}
	}

	return workoutReq, true
}

func (handler *WorkoutsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.delete")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	// the client restores the category filter after deletion, so the
	// category id is read before the row goes away
	workout, err := handler.repo.Get(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s before delete: %s", workoutID, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	if err := handler.editor.Delete(ctx, userID, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s: %s", workoutID, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"deleted":true,"categoryId":%q}`, workout.CategoryID))
}

func (handler *WorkoutsHandler) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.duplicate")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	var duplicateReq DuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&duplicateReq); err != nil {
		http.Error(w, "invalid duplicate request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(duplicateReq.FriendName) == "" {
		http.Error(w, "error, friend name empty", http.StatusBadRequest)
		return
	}

	copied, err := handler.editor.Duplicate(ctx, userID, workoutID, duplicateReq.FriendName)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoCategory):
			http.Error(w, "error, create a category first", http.StatusConflict)
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		default:
			log.Errorf("duplicate workout %s for %s: %s", workoutID, userID, err)
			http.Error(w, "duplicate workout failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterWorkoutsDuplicated.Inc()

	copiedJson, err := json.Marshal(copied)
	if err != nil {
		log.Errorf("marshal workout copy: %s", err)
		http.Error(w, "duplicate workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, copiedJson, http.StatusCreated)
}

func (handler *WorkoutsHandler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.suggestions")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	suggestions, err := handler.repo.ExerciseSuggestions(ctx, userID)
	if err != nil {
		log.Errorf("exercise suggestions for %s: %s", userID, err)
		http.Error(w, "suggestions failed", http.StatusInternalServerError)
		return
	}

	if query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q"))); query != "" {
		matched := make([]ExerciseSuggestion, 0, len(suggestions))
		for _, suggestion := range suggestions {
			if strings.Contains(strings.ToLower(suggestion.Name), query) {
				matched = append(matched, suggestion)
			}
		}
		suggestions = matched
	}

	if suggestions == nil {
		suggestions = []ExerciseSuggestion{}
	}
	suggestionsJson, err := json.Marshal(suggestions)
	if err != nil {
		log.Errorf("marshal suggestions: %s", err)
		http.Error(w, "suggestions failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, suggestionsJson)
}

func (handler *WorkoutsHandler) handleCovers(w http.ResponseWriter, _ *http.Request) {
	coversJson, err := json.Marshal(Covers())
	if err != nil {
		http.Error(w, "covers failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, coversJson)
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/internal/telemetry/tracing"
	"github.com/pumpout/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=categories_mocks_test.go -package=catalog_test

type categoriesApi interface {
	Create(ctx context.Context, category Category) (*Category, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Category, error)
	Rename(ctx context.Context, id, userID uuid.UUID, name string) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type CategoriesHandler struct {
	repo categoriesApi
}

func NewCategoriesHandler(repo categoriesApi) *CategoriesHandler {
	return &CategoriesHandler{
		repo: repo,
	}
}

func (handler *CategoriesHandler) SetupRoutes(mainRouter *mux.Router) {
	categoriesRouter := mainRouter.PathPrefix("/categories").Subrouter()
	categoriesRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("categories-list")
	categoriesRouter.HandleFunc("", handler.handleCreate).Methods("POST", "OPTIONS").Name("categories-create")
	categoriesRouter.HandleFunc("/{id}", handler.handleRename).Methods("PUT", "OPTIONS").Name("categories-rename")
	categoriesRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("categories-delete")
}

func (handler *CategoriesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "categoriesHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	categories, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list categories for %s: %s", userID, err)
		http.Error(w, "list categories failed", http.StatusInternalServerError)
		return
	}

	if categories == nil {
		categories = []Category{}
	}
	categoriesJson, err := json.Marshal(categories)
	if err != nil {
		log.Errorf("marshal categories: %s", err)
		http.Error(w, "list categories failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, categoriesJson)
}

func (handler *CategoriesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "categoriesHandler.create")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type createRequest struct {
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl"`
	}

	var createReq createRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		log.Tracef("create category, unmarshal json params: %s", err)
		http.Error(w, "create category failed", http.StatusBadRequest)
		return
	}

	createReq.Name = strings.TrimSpace(createReq.Name)
	if createReq.Name == "" {
		http.Error(w, "error, category name empty", http.StatusBadRequest)
		return
	}
	if createReq.ImageURL == "" {
		createReq.ImageURL = RandomCover()
	}

	category, err := handler.repo.Create(ctx, Category{
		ID:        uuid.New(),
		Name:      createReq.Name,
		ImageURL:  createReq.ImageURL,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Errorf("create category for %s: %s", userID, err)
		http.Error(w, "create category failed", http.StatusInternalServerError)
		return
	}

	categoryJson, err := json.Marshal(category)
	if err != nil {
		log.Errorf("marshal category: %s", err)
		http.Error(w, "create category failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, categoryJson, http.StatusCreated)
}

func (handler *CategoriesHandler) handleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "categoriesHandler.rename")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	categoryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid category id", http.StatusBadRequest)
		return
	}

	type renameRequest struct {
		Name string `json:"name"`
	}

	var renameReq renameRequest
	if err := json.NewDecoder(r.Body).Decode(&renameReq); err != nil {
		http.Error(w, "rename category failed", http.StatusBadRequest)
		return
	}

	renameReq.Name = strings.TrimSpace(renameReq.Name)
	if renameReq.Name == "" {
		http.Error(w, "error, category name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Rename(ctx, categoryID, userID, renameReq.Name); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		log.Errorf("rename category %s: %s", categoryID, err)
		http.Error(w, "rename category failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "renamed")
}

func (handler *CategoriesHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "categoriesHandler.delete")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	categoryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid category id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, categoryID, userID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete category %s: %s", categoryID, err)
		http.Error(w, "delete category failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

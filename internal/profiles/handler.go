package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pumpout/backend/internal/auth"
	"github.com/pumpout/backend/internal/middleware"
	"github.com/pumpout/backend/internal/telemetry/metrics"
	"github.com/pumpout/backend/internal/telemetry/tracing"
	"github.com/pumpout/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

const maxAvatarSizeBytes = 5 << 20

type profilesApi interface {
	Create(ctx context.Context, profile Profile) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]Profile, error)
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type identityApi interface {
	Me(ctx context.Context, id uuid.UUID) (*Profile, error)
	Invalidate(id uuid.UUID)
}

type loginService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

type SearchResponse struct {
	Profiles []Profile `json:"profiles"`
}

type Handler struct {
	repo           profilesApi
	identity       identityApi
	authService    loginService
	avatarStore    *AvatarStore
	publicBaseURL  string
	versionInfo    string
	metricsManager *metrics.Manager
}

func NewHandler(
	repo profilesApi,
	identity identityApi,
	authService loginService,
	avatarStore *AvatarStore,
	publicBaseURL string,
	versionInfo string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		identity:       identity,
		authService:    authService,
		avatarStore:    avatarStore,
		publicBaseURL:  publicBaseURL,
		versionInfo:    versionInfo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/signup", handler.handleSignup).
		Methods("POST", "OPTIONS").Name("signup")
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the signup/login/logout endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(
		rateLimiter, "login", loginRateLimitAllowedPerMin, handler.metricsManager,
	))
	loginSubrouter.Use(middleware.Cors())

	profileSubrouter := mainRouter.PathPrefix("/profile").Subrouter()
	profileSubrouter.HandleFunc("/me", handler.handleMe).Methods("GET", "OPTIONS").Name("profile-me")
	profileSubrouter.HandleFunc("/search", handler.handleSearch).Methods("GET", "OPTIONS").Name("profile-search")
	profileSubrouter.HandleFunc("/avatar", handler.handleUploadAvatar).Methods("POST", "OPTIONS").Name("avatar-upload")
	profileSubrouter.HandleFunc("/avatar/{userID}/{fileName}", handler.handleServeAvatar).Methods("GET").Name("avatar-serve")
	profileSubrouter.HandleFunc("", handler.handleDeleteAccount).Methods("DELETE", "OPTIONS").Name("profile-delete")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.signup")
	defer span.End()

	type signupRequest struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var signupReq signupRequest
	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		log.Errorf("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	signupReq.Email = strings.TrimSpace(strings.ToLower(signupReq.Email))
	signupReq.Username = strings.TrimSpace(signupReq.Username)

	if signupReq.Email == "" || !strings.Contains(signupReq.Email, "@") {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if signupReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if len(signupReq.Password) < 6 {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(signupReq.Password)
	if err != nil {
		log.Errorf("signup, hash password: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	profile, err := handler.repo.Create(ctx, Profile{
		ID:           uuid.New(),
		Email:        signupReq.Email,
		Username:     signupReq.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, email or username taken", http.StatusConflict)
			return
		}
		log.Errorf("signup, create profile: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.authService.Login(ctx, profile.ID.String(), time.Now())
	if err != nil {
		log.Errorf("signup, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("profile.id", profile.ID.String()))
	handler.metricsManager.CounterSignups.Inc()

	handler.writeLoginResponse(w, http.StatusCreated, token, *profile)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.login")
	defer span.End()

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	loginReq.Email = strings.TrimSpace(strings.ToLower(loginReq.Email))
	if loginReq.Email == "" || loginReq.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	profile, err := handler.repo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			log.Tracef("[email] failed login attempt for: %s", loginReq.Email)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, get profile: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, profile.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", loginReq.Email)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.Login(ctx, profile.ID.String(), time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	span.SetStatus(codes.Ok, "login-ok")
	handler.metricsManager.CounterLogins.Inc()

	handler.writeLoginResponse(w, http.StatusOK, token, *profile)
}

func (handler *Handler) writeLoginResponse(w http.ResponseWriter, statusCode int, token string, profile Profile) {
	respBytes, err := json.Marshal(LoginResponse{
		Token:   token,
		Profile: profile,
	})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-PUMPOUT-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(r.Context(), authToken); err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.me")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := handler.identity.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (handler *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.search")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	span.SetAttributes(attribute.String("query", query))

	// too short to be worth a trip to the db
	if len(query) < 2 {
		pkg.WriteJSONResponseOK(w, `{"profiles":[]}`)
		return
	}

	found, err := handler.repo.Search(ctx, query, userID, 10)
	if err != nil {
		log.Errorf("search profiles [%s]: %s", query, err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	if found == nil {
		found = []Profile{}
	}
	respBytes, err := json.Marshal(SearchResponse{Profiles: found})
	if err != nil {
		log.Errorf("marshal search response: %s", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.uploadAvatar")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSizeBytes); err != nil {
		log.Tracef("upload avatar, parse multipart form: %s", err)
		http.Error(w, "invalid avatar upload", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "error, avatar file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	relPath, err := handler.avatarStore.Save(userID, time.Now().Unix(), file)
	if err != nil {
		log.Errorf("save avatar for %s: %s", userID, err)
		http.Error(w, "avatar upload failed", http.StatusInternalServerError)
		return
	}

	avatarURL := fmt.Sprintf("%s/profile/avatar/%s", handler.publicBaseURL, relPath)
	if err := handler.repo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		log.Errorf("update avatar url for %s: %s", userID, err)
		http.Error(w, "avatar upload failed", http.StatusInternalServerError)
		return
	}

	handler.identity.Invalidate(userID)

	log.Debugf("new avatar for %s: %s", userID, avatarURL)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"avatarUrl": %q}`, avatarURL))
}

func (handler *Handler) handleServeAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relPath := fmt.Sprintf("%s/%s", vars["userID"], vars["fileName"])

	file, err := handler.avatarStore.Open(relPath)
	if err != nil {
		if errors.Is(err, ErrAvatarNotFound) {
			http.Error(w, "avatar not found", http.StatusNotFound)
			return
		}
		log.Errorf("serve avatar %s: %s", relPath, err)
		http.Error(w, "serve avatar failed", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, file); err != nil {
		log.Errorf("serve avatar %s: %s", relPath, err)
	}
}

func (handler *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "profilesHandler.deleteAccount")
	defer span.End()

	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.String("profile.id", userID.String()))

	if err := handler.repo.DeleteAccount(ctx, userID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete account %s: %s", userID, err)
		http.Error(w, "delete account failed", http.StatusInternalServerError)
		return
	}

	handler.identity.Invalidate(userID)
	if err := handler.avatarStore.RemoveAll(userID); err != nil {
		// account data is gone, the leftover file is just disk noise
		log.Errorf("delete account %s, remove avatars: %s", userID, err)
	}

	if authToken := r.Header.Get("X-PUMPOUT-TOKEN"); authToken != "" {
		if err := handler.authService.Logout(ctx, authToken); err != nil {
			log.Tracef("delete account %s, logout: %s", userID, err)
		}
	}

	log.Printf("account %s deleted", userID)
	pkg.WriteTextResponseOK(w, "account-deleted")
}

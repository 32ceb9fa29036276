package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/facultyscope/pkg/domain"
	"github.com/umputun/facultyscope/pkg/profile"
)

//go:generate moq -out mocks/profiles.go -pkg mocks -skip-ensure -fmt goimports . Profiles
//go:generate moq -out mocks/academic.go -pkg mocks -skip-ensure -fmt goimports . Academic
//go:generate moq -out mocks/documents.go -pkg mocks -skip-ensure -fmt goimports . Documents
//go:generate moq -out mocks/graph.go -pkg mocks -skip-ensure -fmt goimports . Graph
//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . Lister
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . Health

// Server represents HTTP server instance
type Server struct {
	cfg    Config
	stores Stores

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config holds server settings
type Config struct {
	Listen                string
	Timeout               time.Duration
	Version               string
	Debug                 bool
	ResetFavoritesOnLogin bool             // clear favorites every time a user logs in
	TrendYears            int              // number of past years in keyword trends
	Now                   func() time.Time // clock for trend ranges, time.Now if nil
}

// Stores are the backends the server reads and writes. Documents, Graph and GraphKeywords are
// optional, endpoints using a missing one answer 503.
type Stores struct {
	Profiles      Profiles
	Academic      Academic
	Keywords      Lister // keywords of the relational store
	Documents     Documents
	Graph         Graph
	GraphKeywords Lister // keywords with interested faculty in the graph
	Health        Health // optional backend health reports
}

// Profiles is the user profile store
type Profiles interface {
	GetProfile(ctx context.Context, email string) (*domain.UserProfile, error)
	SaveInterests(ctx context.Context, email string, interests []string) error
	AddInterest(ctx context.Context, email, interest string) error
	RemoveInterest(ctx context.Context, email, interest string) error
	AddFavorite(ctx context.Context, email string, facultyID int64) (bool, error)
	RemoveFavorite(ctx context.Context, email string, facultyID int64) error
	ListFavorites(ctx context.Context, email string) ([]domain.FavoriteRecord, error)
	IsFavorite(ctx context.Context, email string, facultyID int64) (bool, error)
	ClearFavorites(ctx context.Context, email string) error
	ClearProfile(ctx context.Context, email string) error
}

// Academic runs keyword searches on the relational store
type Academic interface {
	Universities(ctx context.Context) ([]string, error)
	FacultyByKeywords(ctx context.Context, keywords []string, university string, limit int) ([]domain.FacultyCard, error)
	UniversityPublicationCounts(ctx context.Context, keyword string, limit int) ([]domain.UniversityCount, error)
}

// Documents reads faculty and publication documents
type Documents interface {
	Universities(ctx context.Context) ([]string, error)
	FacultyByUniversity(ctx context.Context, university string) ([]domain.FacultyProfile, error)
	FacultyNames(ctx context.Context) ([]string, error)
	FacultyByName(ctx context.Context, name string) (*domain.FacultyProfile, error)
	FacultyByID(ctx context.Context, id int64) (*domain.FacultyProfile, error)
	TopPublications(ctx context.Context, ids []int64, limit int) ([]domain.Publication, error)
	KeywordTrend(ctx context.Context, keyword string, fromYear, toYear int) ([]domain.YearCount, error)
}

// Graph builds keyword networks
type Graph interface {
	KeywordNetwork(ctx context.Context, keyword string) (domain.Network, error)
}

// Health reports the last backend checks
type Health interface {
	Status() []domain.BackendStatus
}

// Lister returns a list of names
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// errNotConfigured is returned for endpoints whose store isn't configured
var errNotConfigured = errors.New("store not configured")

// New initializes a new server instance
func New(cfg Config, stores Stores) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TrendYears <= 0 {
		cfg.TrendYears = 15
	}
	s := &Server{
		cfg:    cfg,
		stores: stores,
		router: routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Timeout,
		ReadTimeout:       s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("facultyscope", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /login", s.loginHandler)

		// user profiles
		r.HandleFunc("GET /profile/{email}", s.getProfileHandler)
		r.HandleFunc("DELETE /profile/{email}", s.clearProfileHandler)
		r.HandleFunc("PUT /profile/{email}/interests", s.saveInterestsHandler)
		r.HandleFunc("POST /profile/{email}/interest", s.addInterestHandler)
		r.HandleFunc("DELETE /profile/{email}/interest", s.removeInterestHandler)
		r.HandleFunc("GET /profile/{email}/favorites", s.listFavoritesHandler)
		r.HandleFunc("DELETE /profile/{email}/favorites", s.clearFavoritesHandler)
		r.HandleFunc("POST /profile/{email}/favorites/{id}", s.addFavoriteHandler)
		r.HandleFunc("DELETE /profile/{email}/favorites/{id}", s.removeFavoriteHandler)

		// keyword search
		r.HandleFunc("GET /keywords", s.keywordsHandler)
		r.HandleFunc("GET /universities", s.universitiesHandler)
		r.HandleFunc("GET /faculty/search", s.facultySearchHandler)
		r.HandleFunc("GET /keywords/{keyword}/universities", s.keywordUniversitiesHandler)

		// keyword visualizations
		r.HandleFunc("GET /graph/keywords", s.graphKeywordsHandler)
		r.HandleFunc("GET /keywords/{keyword}/network", s.keywordNetworkHandler)
		r.HandleFunc("GET /keywords/{keyword}/trend", s.keywordTrendHandler)
		r.HandleFunc("GET /keywords/{keyword}/overview", s.keywordOverviewHandler)

		// faculty profiles
		r.HandleFunc("GET /faculty", s.facultyByUniversityHandler)
		r.HandleFunc("GET /faculty/universities", s.facultyUniversitiesHandler)
		r.HandleFunc("GET /faculty/names", s.facultyNamesHandler)
		r.HandleFunc("GET /faculty/by-name/{name}", s.facultyByNameHandler)
		r.HandleFunc("GET /faculty/{id}", s.facultyByIDHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderStoreError maps a store failure to a status code: 400 for invalid input, 404 for
// unknown faculty, 503 when a backend is unavailable or not configured, 500 otherwise
func renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, profile.ErrInvalidEmail), errors.Is(err, profile.ErrInvalidInterest):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrFacultyNotFound):
		code = http.StatusNotFound
	case profile.IsStorageError(err), errors.Is(err, errNotConfigured):
		code = http.StatusServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[WARN] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	renderError(w, r, err, code)
}

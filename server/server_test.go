package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/facultyscope/pkg/domain"
	"github.com/umputun/facultyscope/pkg/profile"
	"github.com/umputun/facultyscope/server/mocks"
)

func TestServer_New(t *testing.T) {
	srv := New(Config{Listen: ":8080", Version: "1.0.0"}, Stores{Profiles: &mocks.ProfilesMock{}})
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.cfg.Version)
	assert.Equal(t, 15, srv.cfg.TrendYears, "default trend years")
	assert.NotNil(t, srv.cfg.Now)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	stores := Stores{
		Profiles: &mocks.ProfilesMock{
			GetProfileFunc: func(ctx context.Context, email string) (*domain.UserProfile, error) {
				return &domain.UserProfile{Email: email}, nil
			},
		},
		Academic: &mocks.AcademicMock{},
	}
	srv := New(Config{Listen: fmt.Sprintf("127.0.0.1:%d", port), Timeout: 5 * time.Second, Version: "1.0.0"}, stores)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(baseURL + "/api/v1/profile/alice@example.com")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"email":"alice@example.com"`)
	assert.Equal(t, "facultyscope", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_Middleware(t *testing.T) {
	srv := New(Config{Version: "1.2.3"}, Stores{})

	t.Run("ping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})

	t.Run("app info headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "facultyscope", w.Header().Get("App-Name"))
		assert.Equal(t, "1.2.3", w.Header().Get("App-Version"))
	})

	t.Run("body size limit", func(t *testing.T) {
		body := `{"interests":["` + strings.Repeat("x", 70*1024) + `"]}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/a@b.c/interests", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRenderStoreError(t *testing.T) {
	tbl := []struct {
		name string
		err  error
		code int
	}{
		{"invalid email", fmt.Errorf("get: %w", profile.ErrInvalidEmail), http.StatusBadRequest},
		{"invalid interest", profile.ErrInvalidInterest, http.StatusBadRequest},
		{"faculty not found", domain.ErrFacultyNotFound, http.StatusNotFound},
		{"storage error", &profile.StorageError{Op: "get profile", Err: errors.New("db down")}, http.StatusServiceUnavailable},
		{"not configured", fmt.Errorf("graph %w", errNotConfigured), http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
			w := httptest.NewRecorder()
			renderStoreError(w, req, tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"error":`)
		})
	}
}

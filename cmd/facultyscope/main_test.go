package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MongoUnavailable(t *testing.T) {
	dir := t.TempDir()
	cfgContent := fmt.Sprintf(`
database:
  dsn: file:%s?mode=rwc&_txlock=immediate
mongo:
  uri: mongodb://127.0.0.1:1
  timeout: 200ms
`, filepath.Join(dir, "test.db"))
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfgContent), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to mongo")
}

func TestRun_ServerStartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	dir := t.TempDir()
	cfgContent := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  timeout: 5s
database:
  dsn: file:%s?mode=rwc&_txlock=immediate
neo4j:
  uri: bolt://127.0.0.1:1
health:
  interval: 1s
  timeout: 1s
`, port, filepath.Join(dir, "test.db"))
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfgContent), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: path, NoColor: true}) }()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 15*time.Second, 50*time.Millisecond)

	// profile round trip through the sqlite store
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/profile/Ada@Example.com/interest?interest=nlp", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"email":"Ada@Example.com"`)
	assert.Contains(t, string(body), `"interests":["nlp"]`)

	// neo4j is unreachable, graph endpoints are disabled
	resp, err = http.Get(baseURL + "/api/v1/keywords/nlp/network")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// health monitor reports the sql backend
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/v1/status")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		return err == nil && strings.Contains(string(b), `"name":"sql","up":true`)
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/facultyscope/pkg/domain"
)

type dirFunc func(ctx context.Context, id int64) (*domain.Faculty, error)

func (f dirFunc) Resolve(ctx context.Context, id int64) (*domain.Faculty, error) { return f(ctx, id) }

// countingDirectory knows faculty 42 and counts lookups
func countingDirectory(calls *int) Directory {
	return dirFunc(func(_ context.Context, id int64) (*domain.Faculty, error) {
		*calls++
		if id != 42 {
			return nil, domain.ErrFacultyNotFound
		}
		return &domain.Faculty{ID: 42, Name: "A. Turing", AffiliationName: "Cambridge"}, nil
	})
}

func TestRedis_Bypass(t *testing.T) {
	for name, r := range map[string]*Redis{"nil": nil, "no addr": New(context.Background(), Config{})} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			assert.False(t, r.Enabled())
			assert.Error(t, r.Ping(ctx))
			assert.NoError(t, r.Close())

			var out string
			hit, err := r.GetJSON(ctx, "k", &out)
			require.NoError(t, err)
			assert.False(t, hit)
			assert.NoError(t, r.SetJSON(ctx, "k", "v"))
		})
	}
}

func TestNew_Unreachable(t *testing.T) {
	r := New(context.Background(), Config{Addr: "127.0.0.1:1", TTL: time.Minute})
	assert.False(t, r.Enabled())
	assert.Equal(t, time.Minute, r.ttl)
}

func TestCachedDirectory_Bypass(t *testing.T) {
	calls := 0
	c := NewCachedDirectory(countingDirectory(&calls), nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		f, err := c.Resolve(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "A. Turing", f.Name)
	}
	assert.Equal(t, 2, calls, "no cache, every call hits the directory")

	_, err := c.Resolve(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrFacultyNotFound)
}

func TestCachedList_Bypass(t *testing.T) {
	calls := 0
	l := NewCachedList("keywords", func(context.Context) ([]string, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("db down")
		}
		return []string{"logic", "nlp"}, nil
	}, nil)

	res, err := l.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"logic", "nlp"}, res)
	_, err = l.List(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Equal(t, "list:keywords", l.key)
}

func TestFacultyKey(t *testing.T) {
	assert.Equal(t, "faculty:42", facultyKey(42))
}

// setupTestRedis connects to REDIS_TEST_ADDR, skipping without it
func setupTestRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	r := New(context.Background(), Config{Addr: addr, TTL: time.Minute})
	require.True(t, r.Enabled())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestCachedDirectory_Redis(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()
	id := time.Now().UnixNano()%1_000_000 + 42_000_000 // unused id range

	calls := 0
	dir := dirFunc(func(_ context.Context, fid int64) (*domain.Faculty, error) {
		calls++
		return &domain.Faculty{ID: fid, Name: fmt.Sprintf("faculty %d", fid), AffiliationName: "MIT"}, nil
	})
	c := NewCachedDirectory(dir, r)
	t.Cleanup(func() { _ = r.client.Del(context.Background(), facultyKey(id)).Err() })

	for i := 0; i < 3; i++ {
		f, err := c.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, &domain.Faculty{ID: id, Name: fmt.Sprintf("faculty %d", id), AffiliationName: "MIT"}, f)
	}
	assert.Equal(t, 1, calls)

	// expired or evicted entries are loaded again
	require.NoError(t, r.client.Del(ctx, facultyKey(id)).Err())
	_, err := c.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachedDirectory_RedisNoNegativeCaching(t *testing.T) {
	r := setupTestRedis(t)
	calls := 0
	c := NewCachedDirectory(countingDirectory(&calls), r)

	for i := 0; i < 2; i++ {
		_, err := c.Resolve(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrFacultyNotFound)
	}
	assert.Equal(t, 2, calls)
}

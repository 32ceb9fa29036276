package cache

import (
	"context"
	"fmt"

	"github.com/umputun/facultyscope/pkg/domain"
)

// Directory resolves faculty ids
type Directory interface {
	Resolve(ctx context.Context, facultyID int64) (*domain.Faculty, error)
}

// CachedDirectory is a cache-aside faculty directory. Unknown ids are not cached.
type CachedDirectory struct {
	dir   Directory
	cache *Redis
}

// NewCachedDirectory wraps dir with cache
func NewCachedDirectory(dir Directory, cache *Redis) *CachedDirectory {
	return &CachedDirectory{dir: dir, cache: cache}
}

// Resolve returns the faculty from cache or from the wrapped directory
func (c *CachedDirectory) Resolve(ctx context.Context, facultyID int64) (*domain.Faculty, error) {
	return Fetch(ctx, c.cache, facultyKey(facultyID), func(ctx context.Context) (*domain.Faculty, error) {
		return c.dir.Resolve(ctx, facultyID)
	})
}

// ListFunc loads a list of names
type ListFunc func(ctx context.Context) ([]string, error)

// CachedList is a cache-aside list of names, like keywords or universities
type CachedList struct {
	key   string
	load  ListFunc
	cache *Redis
}

// NewCachedList makes a list cached under "list:<name>"
func NewCachedList(name string, load ListFunc, cache *Redis) *CachedList {
	return &CachedList{key: "list:" + name, load: load, cache: cache}
}

// List returns the cached list or loads it
func (c *CachedList) List(ctx context.Context) ([]string, error) {
	return Fetch(ctx, c.cache, c.key, func(ctx context.Context) ([]string, error) {
		return c.load(ctx)
	})
}

func facultyKey(id int64) string {
	return fmt.Sprintf("faculty:%d", id)
}

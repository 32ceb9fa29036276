package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/facultyscope/pkg/domain"
)

//go:generate moq -out mocks/pinger.go -pkg mocks -skip-ensure -fmt goimports . Pinger
//go:generate moq -out mocks/warmer.go -pkg mocks -skip-ensure -fmt goimports . Warmer

// Scheduler periodically checks backends and warms cached lists
type Scheduler struct {
	checks     map[string]Pinger
	warmers    map[string]warmer
	interval   time.Duration
	timeout    time.Duration
	maxWorkers int
	now        func() time.Time

	mu     sync.RWMutex
	status map[string]domain.BackendStatus

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Pinger checks that a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Warmer loads a cached list, refreshing the cache on a miss
type Warmer interface {
	List(ctx context.Context) ([]string, error)
}

type warmer struct {
	backend string
	list    Warmer
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration
	Timeout    time.Duration // per check or warm-up
	MaxWorkers int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}

	return &Scheduler{
		checks:     map[string]Pinger{},
		warmers:    map[string]warmer{},
		interval:   cfg.Interval,
		timeout:    cfg.Timeout,
		maxWorkers: cfg.MaxWorkers,
		now:        time.Now,
		status:     map[string]domain.BackendStatus{},
	}
}

// AddCheck registers a backend check. Must be called before Start.
func (s *Scheduler) AddCheck(name string, p Pinger) {
	s.checks[name] = p
}

// AddWarmer registers a cached list loaded from backend. The list is skipped while
// the backend check fails. Must be called before Start.
func (s *Scheduler) AddWarmer(name, backend string, w Warmer) {
	s.warmers[name] = warmer{backend: backend, list: w}
}

// Start runs checks immediately and then every interval
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v, %d checks, %d warmers",
		s.interval, len(s.checks), len(s.warmers))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Status returns the last check results sorted by backend name.
// Backends not checked yet are absent.
func (s *Scheduler) Status() []domain.BackendStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]domain.BackendStatus, 0, len(s.status))
	for _, st := range s.status {
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce checks all backends and then warms lists of the backends that are up
func (s *Scheduler) runOnce(ctx context.Context) {
	pool(ctx, s.maxWorkers, s.checks, s.check)

	s.mu.RLock()
	warmers := make(map[string]warmer, len(s.warmers))
	for name, w := range s.warmers {
		if st, ok := s.status[w.backend]; ok && !st.Up {
			lgr.Printf("[DEBUG] skip warming %s, backend %s is down", name, w.backend)
			continue
		}
		warmers[name] = w
	}
	s.mu.RUnlock()

	pool(ctx, s.maxWorkers, warmers, s.warm)
}

// pool runs fn for every entry with at most workers at once
func pool[T any](ctx context.Context, workers int, items map[string]T, fn func(ctx context.Context, name string, item T)) {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for name, item := range items {
		wg.Add(1)
		go func(name string, item T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			fn(ctx, name, item)
		}(name, item)
	}

	wg.Wait()
}

// check pings a backend and records the result, logging only up/down transitions
func (s *Scheduler) check(ctx context.Context, name string, p Pinger) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := p.Ping(ctx)
	st := domain.BackendStatus{Name: name, Up: err == nil, CheckedAt: s.now().UTC()}
	if err != nil {
		st.Error = err.Error()
	}

	s.mu.Lock()
	prev, seen := s.status[name]
	s.status[name] = st
	s.mu.Unlock()

	switch {
	case err != nil && (!seen || prev.Up):
		lgr.Printf("[WARN] backend %s is down: %v", name, err)
	case err == nil && seen && !prev.Up:
		lgr.Printf("[INFO] backend %s is up again", name)
	default:
		lgr.Printf("[DEBUG] backend %s checked, up=%v", name, st.Up)
	}
}

func (s *Scheduler) warm(ctx context.Context, name string, w warmer) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	vals, err := w.list.List(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to warm %s: %v", name, err)
		return
	}
	lgr.Printf("[DEBUG] warmed %s, %d entries", name, len(vals))
}

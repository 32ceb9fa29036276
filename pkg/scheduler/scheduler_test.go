package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/facultyscope/pkg/scheduler/mocks"
)

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Config{})
	assert.Equal(t, time.Minute, s.interval)
	assert.Equal(t, 5*time.Second, s.timeout)
	assert.Equal(t, 4, s.maxWorkers)
	assert.Empty(t, s.Status())
}

func TestScheduler_runOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("EST", -5*3600))
	s := NewScheduler(Config{Interval: time.Hour, Timeout: time.Second})
	s.now = func() time.Time { return now }

	s.AddCheck("sql", &mocks.PingerMock{PingFunc: func(ctx context.Context) error { return nil }})
	s.AddCheck("neo4j", &mocks.PingerMock{PingFunc: func(ctx context.Context) error { return errors.New("refused") }})

	sqlKeywords := &mocks.WarmerMock{ListFunc: func(ctx context.Context) ([]string, error) { return []string{"nlp"}, nil }}
	graphKeywords := &mocks.WarmerMock{ListFunc: func(ctx context.Context) ([]string, error) { return nil, nil }}
	s.AddWarmer("keywords", "sql", sqlKeywords)
	s.AddWarmer("graph-keywords", "neo4j", graphKeywords)

	s.runOnce(context.Background())

	status := s.Status()
	require.Len(t, status, 2)
	assert.Equal(t, "neo4j", status[0].Name, "sorted by name")
	assert.False(t, status[0].Up)
	assert.Equal(t, "refused", status[0].Error)
	assert.Equal(t, "sql", status[1].Name)
	assert.True(t, status[1].Up)
	assert.Empty(t, status[1].Error)
	assert.Equal(t, now.UTC(), status[1].CheckedAt)

	assert.Len(t, sqlKeywords.ListCalls(), 1)
	assert.Empty(t, graphKeywords.ListCalls(), "lists of a down backend are not warmed")
}

func TestScheduler_Recovery(t *testing.T) {
	var down atomic.Bool
	down.Store(true)
	s := NewScheduler(Config{Interval: time.Hour, Timeout: time.Second})
	s.AddCheck("mongo", &mocks.PingerMock{PingFunc: func(ctx context.Context) error {
		if down.Load() {
			return errors.New("no reachable servers")
		}
		return nil
	}})

	s.runOnce(context.Background())
	require.Len(t, s.Status(), 1)
	assert.False(t, s.Status()[0].Up)

	down.Store(false)
	s.runOnce(context.Background())
	assert.True(t, s.Status()[0].Up)
	assert.Empty(t, s.Status()[0].Error)
}

func TestScheduler_CheckTimeout(t *testing.T) {
	s := NewScheduler(Config{Interval: time.Hour, Timeout: 50 * time.Millisecond})
	s.AddCheck("slow", &mocks.PingerMock{PingFunc: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	st := time.Now()
	s.runOnce(context.Background())
	assert.Less(t, time.Since(st), time.Second)
	require.Len(t, s.Status(), 1)
	assert.False(t, s.Status()[0].Up)
	assert.Contains(t, s.Status()[0].Error, "deadline exceeded")
}

func TestScheduler_WarmerFailureIsLogged(t *testing.T) {
	s := NewScheduler(Config{Interval: time.Hour})
	w := &mocks.WarmerMock{ListFunc: func(ctx context.Context) ([]string, error) { return nil, errors.New("boom") }}
	s.AddWarmer("keywords", "sql", w)

	s.runOnce(context.Background())
	assert.Len(t, w.ListCalls(), 1, "warmed even without a registered check")
}

func TestScheduler_StartStop(t *testing.T) {
	var pings atomic.Int32
	s := NewScheduler(Config{Interval: 20 * time.Millisecond, Timeout: 10 * time.Millisecond})
	s.AddCheck("sql", &mocks.PingerMock{PingFunc: func(ctx context.Context) error {
		pings.Add(1)
		return nil
	}})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return pings.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := pings.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, stopped, pings.Load(), "no checks after Stop")
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(Config{})
	s.Stop()
}

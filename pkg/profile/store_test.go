package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/facultyscope/pkg/domain"
	"github.com/umputun/facultyscope/pkg/profile/mocks"
	"github.com/umputun/facultyscope/pkg/repository"
)

// testClock returns a clock advancing by one second on every call
func testClock() func() time.Time {
	var mu sync.Mutex
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		ts = ts.Add(time.Second)
		return ts
	}
}

// directory knows a few faculty members
func directory() *mocks.DirectoryMock {
	faculty := map[int64]domain.Faculty{
		42: {ID: 42, Name: "A. Turing", AffiliationName: "Cambridge"},
		43: {ID: 43, Name: "G. Hopper", AffiliationName: "Yale"},
	}
	return &mocks.DirectoryMock{
		ResolveFunc: func(ctx context.Context, facultyID int64) (*domain.Faculty, error) {
			f, ok := faculty[facultyID]
			if !ok {
				return nil, domain.ErrFacultyNotFound
			}
			return &f, nil
		},
	}
}

// newTestStore makes a store over an in-memory SQL backend
func newTestStore(t *testing.T) (*Store, *mocks.DirectoryMock) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	dir := directory()
	return New(Config{Backend: repos.Profile, Directory: dir, Now: testClock()}), dir
}

func TestStore_GetProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p, err := s.GetProfile(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", p.Email)
	assert.Empty(t, p.Interests)
	assert.Empty(t, p.FavoriteFaculty)
	assert.False(t, p.CreatedAt.IsZero())

	again, err := s.GetProfile(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, again.CreatedAt, "repeated get doesn't recreate")
	assert.Equal(t, p.LastUpdated, again.LastUpdated, "reads don't touch last updated")

	// surrounding spaces are ignored
	same, err := s.GetProfile(ctx, "  new@x.com ")
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", same.Email)
	assert.Equal(t, p.CreatedAt, same.CreatedAt)

	_, err = s.GetProfile(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestStore_SaveInterests(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tbl := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "order preserved", in: []string{"nlp", "databases", "compilers"}, want: []string{"nlp", "databases", "compilers"}},
		{name: "replaces wholesale", in: []string{"logic"}, want: []string{"logic"}},
		{name: "exact repeats collapse to first", in: []string{"b", "a", "b", " a ", "a"}, want: []string{"b", "a", " a "}},
		{name: "stored verbatim", in: []string{" nlp", "machine learning ", "NLP"}, want: []string{" nlp", "machine learning ", "NLP"}},
		{name: "blank entries kept", in: []string{"", " ", "x"}, want: []string{"", " ", "x"}},
		{name: "empty", in: nil, want: []string{}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			before, err := s.GetProfile(ctx, "a@x.com")
			require.NoError(t, err)

			require.NoError(t, s.SaveInterests(ctx, "a@x.com", tt.in))
			p, err := s.GetProfile(ctx, "a@x.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Interests)
			assert.True(t, p.LastUpdated.After(before.LastUpdated))
			assert.Equal(t, before.CreatedAt, p.CreatedAt)
		})
	}
}

func TestStore_SaveInterestsCreatesProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, "fresh@x.com", []string{"nlp"}))
	p, err := s.GetProfile(ctx, "fresh@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp"}, p.Interests)
	assert.Equal(t, p.CreatedAt, p.LastUpdated)
}

func TestStore_EmailCaseKept(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddInterest(ctx, "A@x.com", "nlp"))

	upper, err := s.GetProfile(ctx, "A@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A@x.com", upper.Email)
	assert.Equal(t, []string{"nlp"}, upper.Interests)

	lower, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", lower.Email)
	assert.Empty(t, lower.Interests, "differently cased email is a separate profile")
}

func TestStore_RemoveInterestVerbatim(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, "a@x.com", []string{" nlp", "nlp"}))
	require.NoError(t, s.RemoveInterest(ctx, "a@x.com", " nlp"))
	p, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp"}, p.Interests)
}

func TestStore_AddInterest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddInterest(ctx, "a@x.com", "nlp"))
	first, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, s.AddInterest(ctx, "a@x.com", "nlp"))
	p, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp"}, p.Interests)
	assert.Equal(t, first.LastUpdated, p.LastUpdated, "no-op add leaves last updated")

	require.NoError(t, s.AddInterest(ctx, "a@x.com", " vision "))
	p, err = s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp", " vision "}, p.Interests, "interest kept as given")

	assert.ErrorIs(t, s.AddInterest(ctx, "a@x.com", "  "), ErrInvalidInterest)
	assert.ErrorIs(t, s.AddInterest(ctx, "", "nlp"), ErrInvalidEmail)
}

func TestStore_RemoveInterest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, "a@x.com", []string{"nlp", "vision"}))
	before, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)

	// removing a missing interest changes nothing
	require.NoError(t, s.RemoveInterest(ctx, "a@x.com", "robotics"))
	p, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp", "vision"}, p.Interests)
	assert.Equal(t, before.LastUpdated, p.LastUpdated)

	require.NoError(t, s.RemoveInterest(ctx, "a@x.com", "nlp"))
	p, err = s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"vision"}, p.Interests)
	assert.True(t, p.LastUpdated.After(before.LastUpdated))
}

func TestStore_AddFavorite(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	assert.True(t, added)

	favs, err := s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, int64(42), favs[0].FacultyID)
	assert.Equal(t, "A. Turing", favs[0].FacultyName)
	assert.Equal(t, "Cambridge", favs[0].UniversityName)
	assert.False(t, favs[0].AddedAt.IsZero())

	// second add is a no-op
	added, err = s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	assert.False(t, added)
	favs, err = s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	// unknown faculty is reported as false and changes nothing
	before, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	added, err = s.AddFavorite(ctx, "a@x.com", 999)
	require.NoError(t, err)
	assert.False(t, added)
	after, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, before.FavoriteFaculty, after.FavoriteFaculty)
	assert.Equal(t, before.LastUpdated, after.LastUpdated)

	isFav, err := s.IsFavorite(ctx, "a@x.com", 999)
	require.NoError(t, err)
	assert.False(t, isFav)
	isFav, err = s.IsFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	assert.True(t, isFav)

	assert.Len(t, dir.ResolveCalls(), 3)
}

func TestStore_AddFavoriteUnknownDoesNotCreateProfile(t *testing.T) {
	backend := &mocks.BackendMock{}
	s := New(Config{Backend: backend, Directory: directory()})

	added, err := s.AddFavorite(context.Background(), "a@x.com", 1000)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, backend.AddFavoriteCalls())
}

func TestStore_RemoveFavorite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	_, err = s.AddFavorite(ctx, "a@x.com", 43)
	require.NoError(t, err)

	require.NoError(t, s.RemoveFavorite(ctx, "a@x.com", 42))
	favs, err := s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, int64(43), favs[0].FacultyID)

	// never added
	require.NoError(t, s.RemoveFavorite(ctx, "a@x.com", 7))
	favs, err = s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestStore_ListFavoritesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []int64{43, 42} {
		_, err := s.AddFavorite(ctx, "a@x.com", id)
		require.NoError(t, err)
	}
	favs, err := s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, int64(43), favs[0].FacultyID)
	assert.Equal(t, int64(42), favs[1].FacultyID)

	favs, err = s.ListFavorites(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestStore_ClearFavorites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, "a@x.com", []string{"nlp", "logic"}))
	_, err := s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	before, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, s.ClearFavorites(ctx, "a@x.com"))
	p, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, p.FavoriteFaculty)
	assert.Equal(t, []string{"nlp", "logic"}, p.Interests)
	assert.True(t, p.LastUpdated.After(before.LastUpdated))
	assert.Equal(t, before.CreatedAt, p.CreatedAt)
}

func TestStore_ClearProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, "a@x.com", []string{"nlp"}))
	_, err := s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	before, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, s.ClearProfile(ctx, "a@x.com"))

	p, err := s.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, p.Interests)
	assert.Empty(t, p.FavoriteFaculty)
	assert.True(t, p.CreatedAt.After(before.CreatedAt), "profile materialized again")
}

func TestStore_TuringScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddFavorite(ctx, "a@x.com", 42)
	require.NoError(t, err)
	assert.True(t, added)

	favs, err := s.ListFavorites(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.FavoriteRecord{
		FacultyID:      42,
		FacultyName:    "A. Turing",
		UniversityName: "Cambridge",
		AddedAt:        favs[0].AddedAt,
	}, favs[0])
}

func TestStore_ConcurrentSessions(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, email := range []string{"a@x.com", "b@x.com"} {
		for i := 0; i < 2; i++ { // two sessions per user
			wg.Add(1)
			go func(email string) {
				defer wg.Done()
				for _, kw := range []string{"nlp", "vision", "logic"} {
					assert.NoError(t, s.AddInterest(ctx, email, kw))
				}
				_, err := s.AddFavorite(ctx, email, 42)
				assert.NoError(t, err)
			}(email)
		}
	}
	wg.Wait()

	for _, email := range []string{"a@x.com", "b@x.com"} {
		p, err := s.GetProfile(ctx, email)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"nlp", "vision", "logic"}, p.Interests)
		assert.Len(t, p.FavoriteFaculty, 1)
	}
}

func TestStore_StorageErrors(t *testing.T) {
	dbErr := errors.New("connection refused")
	backend := &mocks.BackendMock{
		GetOrCreateFunc: func(ctx context.Context, email string, now time.Time) (*domain.UserProfile, error) {
			return nil, dbErr
		},
		ReplaceInterestsFunc: func(ctx context.Context, email string, interests []string, now time.Time) error {
			return dbErr
		},
		AddInterestFunc: func(ctx context.Context, email, interest string, now time.Time) (bool, error) {
			return false, dbErr
		},
		RemoveInterestFunc: func(ctx context.Context, email, interest string, now time.Time) (bool, error) {
			return false, dbErr
		},
		AddFavoriteFunc: func(ctx context.Context, email string, fav domain.FavoriteRecord, now time.Time) (bool, error) {
			return false, dbErr
		},
		RemoveFavoriteFunc: func(ctx context.Context, email string, facultyID int64, now time.Time) (bool, error) {
			return false, dbErr
		},
		FavoritesFunc: func(ctx context.Context, email string) ([]domain.FavoriteRecord, error) {
			return nil, dbErr
		},
		IsFavoriteFunc: func(ctx context.Context, email string, facultyID int64) (bool, error) {
			return false, dbErr
		},
		ClearFavoritesFunc: func(ctx context.Context, email string, now time.Time) error {
			return dbErr
		},
		DeleteProfileFunc: func(ctx context.Context, email string) error {
			return dbErr
		},
	}
	s := New(Config{Backend: backend, Directory: directory()})
	ctx := context.Background()

	ops := map[string]func() error{
		"get": func() error { _, err := s.GetProfile(ctx, "a@x.com"); return err },
		"save": func() error { return s.SaveInterests(ctx, "a@x.com", []string{"x"}) },
		"add interest": func() error { return s.AddInterest(ctx, "a@x.com", "x") },
		"remove interest": func() error { return s.RemoveInterest(ctx, "a@x.com", "x") },
		"add favorite": func() error { _, err := s.AddFavorite(ctx, "a@x.com", 42); return err },
		"remove favorite": func() error { return s.RemoveFavorite(ctx, "a@x.com", 42) },
		"list favorites": func() error { _, err := s.ListFavorites(ctx, "a@x.com"); return err },
		"is favorite": func() error { _, err := s.IsFavorite(ctx, "a@x.com", 42); return err },
		"clear favorites": func() error { return s.ClearFavorites(ctx, "a@x.com") },
		"clear profile": func() error { return s.ClearProfile(ctx, "a@x.com") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			assert.True(t, IsStorageError(err))
			assert.ErrorIs(t, err, dbErr)
		})
	}
}

func TestStore_DirectoryFailureIsStorageError(t *testing.T) {
	dirErr := errors.New("mongo down")
	dir := &mocks.DirectoryMock{
		ResolveFunc: func(ctx context.Context, facultyID int64) (*domain.Faculty, error) {
			return nil, dirErr
		},
	}
	backend := &mocks.BackendMock{}
	s := New(Config{Backend: backend, Directory: dir})

	added, err := s.AddFavorite(context.Background(), "a@x.com", 42)
	require.Error(t, err)
	assert.False(t, added)
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, dirErr)
	assert.Empty(t, backend.AddFavoriteCalls())
}

func TestStore_Timeout(t *testing.T) {
	backend := &mocks.BackendMock{
		GetOrCreateFunc: func(ctx context.Context, email string, now time.Time) (*domain.UserProfile, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	s := New(Config{Backend: backend, Directory: directory(), Timeout: 50 * time.Millisecond})

	st := time.Now()
	_, err := s.GetProfile(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(st), time.Second)
}

func TestStore_PassesNormalizedValues(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	backend := &mocks.BackendMock{
		ReplaceInterestsFunc: func(ctx context.Context, email string, interests []string, now time.Time) error {
			return nil
		},
		AddFavoriteFunc: func(ctx context.Context, email string, fav domain.FavoriteRecord, now time.Time) (bool, error) {
			return true, nil
		},
	}
	s := New(Config{Backend: backend, Directory: directory(), Now: func() time.Time { return now }})
	ctx := context.Background()

	require.NoError(t, s.SaveInterests(ctx, " A@X.com", []string{"nlp", "nlp", " db "}))
	calls := backend.ReplaceInterestsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "A@X.com", calls[0].Email)
	assert.Equal(t, []string{"nlp", " db "}, calls[0].Interests)
	assert.Equal(t, now, calls[0].Now)

	added, err := s.AddFavorite(ctx, "a@x.com", 43)
	require.NoError(t, err)
	assert.True(t, added)
	favCalls := backend.AddFavoriteCalls()
	require.Len(t, favCalls, 1)
	assert.Equal(t, domain.FavoriteRecord{FacultyID: 43, FacultyName: "G. Hopper", UniversityName: "Yale", AddedAt: now}, favCalls[0].Fav)
}

func TestStorageError(t *testing.T) {
	err := &StorageError{Op: "get profile", Err: errors.New("boom")}
	assert.Equal(t, "storage error in get profile: boom", err.Error())
	assert.False(t, IsStorageError(errors.New("other")))
	assert.False(t, IsStorageError(nil))
}

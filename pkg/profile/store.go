// Package profile implements the user profile store: research interests and favorite faculty
// keyed by user email. Profiles are materialized on first access, every mutation is a single
// atomic operation of the backend, and repeated calls from a stateless UI are idempotent.
package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/facultyscope/pkg/domain"
)

//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend
//go:generate moq -out mocks/directory.go -pkg mocks -skip-ensure -fmt goimports . Directory

// DefaultTimeout bounds every storage call unless configured otherwise
const DefaultTimeout = 5 * time.Second

// Backend persists profiles. Each method must be atomic on the storage side.
// Methods returning bool report whether the call changed anything.
type Backend interface {
	GetOrCreate(ctx context.Context, email string, now time.Time) (*domain.UserProfile, error)
	ReplaceInterests(ctx context.Context, email string, interests []string, now time.Time) error
	AddInterest(ctx context.Context, email, interest string, now time.Time) (bool, error)
	RemoveInterest(ctx context.Context, email, interest string, now time.Time) (bool, error)
	AddFavorite(ctx context.Context, email string, fav domain.FavoriteRecord, now time.Time) (bool, error)
	RemoveFavorite(ctx context.Context, email string, facultyID int64, now time.Time) (bool, error)
	Favorites(ctx context.Context, email string) ([]domain.FavoriteRecord, error)
	IsFavorite(ctx context.Context, email string, facultyID int64) (bool, error)
	ClearFavorites(ctx context.Context, email string, now time.Time) error
	DeleteProfile(ctx context.Context, email string) error
}

// Directory resolves faculty ids to display attributes.
// Resolve returns domain.ErrFacultyNotFound for unknown ids.
type Directory interface {
	Resolve(ctx context.Context, facultyID int64) (*domain.Faculty, error)
}

// Store is the user profile store
type Store struct {
	backend   Backend
	directory Directory
	timeout   time.Duration
	now       func() time.Time
}

// Config holds dependencies of the Store
type Config struct {
	Backend   Backend
	Directory Directory
	Timeout   time.Duration    // per storage call, DefaultTimeout if zero
	Now       func() time.Time // clock, time.Now in UTC if nil
}

// New makes a Store
func New(cfg Config) *Store {
	s := &Store{
		backend:   cfg.Backend,
		directory: cfg.Directory,
		timeout:   cfg.Timeout,
		now:       cfg.Now,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

// GetProfile returns the profile for email, creating an empty one for unknown users.
// Emails are keys compared as given after trimming surrounding spaces, so A@x.com and
// a@x.com are different profiles.
func (s *Store) GetProfile(ctx context.Context, email string) (*domain.UserProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	var profile *domain.UserProfile
	err = s.call(ctx, "get profile", func(ctx context.Context) (err error) {
		profile, err = s.backend.GetOrCreate(ctx, email, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveInterests replaces the interest list with interests, creating the profile if needed.
// Entries are stored unchanged in the given order, only exact repeats collapse to their
// first occurrence.
func (s *Store) SaveInterests(ctx context.Context, email string, interests []string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	cleaned := dedupInterests(interests)
	err = s.call(ctx, "save interests", func(ctx context.Context) error {
		return s.backend.ReplaceInterests(ctx, email, cleaned, s.now())
	})
	if err != nil {
		return err
	}
	lgr.Printf("[DEBUG] saved %d interests for %s", len(cleaned), email)
	return nil
}

// AddInterest adds a single interest unless already present, creating the profile if needed
func (s *Store) AddInterest(ctx context.Context, email, interest string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if strings.TrimSpace(interest) == "" {
		return ErrInvalidInterest
	}

	return s.call(ctx, "add interest", func(ctx context.Context) error {
		added, err := s.backend.AddInterest(ctx, email, interest, s.now())
		if err == nil && !added {
			lgr.Printf("[DEBUG] interest %q already saved for %s", interest, email)
		}
		return err
	})
}

// RemoveInterest removes interest from the profile. Missing interests and profiles are ignored
// and last-updated is left untouched in that case.
func (s *Store) RemoveInterest(ctx context.Context, email, interest string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if strings.TrimSpace(interest) == "" {
		return ErrInvalidInterest
	}

	return s.call(ctx, "remove interest", func(ctx context.Context) error {
		_, err := s.backend.RemoveInterest(ctx, email, interest, s.now())
		return err
	})
}

// AddFavorite resolves facultyID in the directory and saves a snapshot of its name and
// university. Returns false without changes if the id doesn't resolve or the faculty is
// already a favorite; use IsFavorite to tell the two apart.
func (s *Store) AddFavorite(ctx context.Context, email string, facultyID int64) (bool, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}

	var faculty *domain.Faculty
	err = s.call(ctx, "resolve faculty", func(ctx context.Context) (err error) {
		faculty, err = s.directory.Resolve(ctx, facultyID)
		if errors.Is(err, domain.ErrFacultyNotFound) {
			faculty, err = nil, nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	if faculty == nil {
		lgr.Printf("[DEBUG] faculty %d not found, favorite for %s not added", facultyID, email)
		return false, nil
	}

	var added bool
	err = s.call(ctx, "add favorite", func(ctx context.Context) (err error) {
		now := s.now()
		fav := domain.FavoriteRecord{
			FacultyID:      faculty.ID,
			FacultyName:    faculty.Name,
			UniversityName: faculty.AffiliationName,
			AddedAt:        now,
		}
		added, err = s.backend.AddFavorite(ctx, email, fav, now)
		return err
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// RemoveFavorite removes facultyID from favorites, no-op if it isn't there
func (s *Store) RemoveFavorite(ctx context.Context, email string, facultyID int64) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	return s.call(ctx, "remove favorite", func(ctx context.Context) error {
		_, err := s.backend.RemoveFavorite(ctx, email, facultyID, s.now())
		return err
	})
}

// ListFavorites returns favorite records in the order they were added
func (s *Store) ListFavorites(ctx context.Context, email string) ([]domain.FavoriteRecord, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	var favs []domain.FavoriteRecord
	err = s.call(ctx, "list favorites", func(ctx context.Context) (err error) {
		favs, err = s.backend.Favorites(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []domain.FavoriteRecord{}
	}
	return favs, nil
}

// IsFavorite checks if facultyID is among the favorites of email
func (s *Store) IsFavorite(ctx context.Context, email string, facultyID int64) (bool, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}

	var res bool
	err = s.call(ctx, "check favorite", func(ctx context.Context) (err error) {
		res, err = s.backend.IsFavorite(ctx, email, facultyID)
		return err
	})
	return res, err
}

// ClearFavorites empties the favorites and keeps interests
func (s *Store) ClearFavorites(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	return s.call(ctx, "clear favorites", func(ctx context.Context) error {
		return s.backend.ClearFavorites(ctx, email, s.now())
	})
}

// ClearProfile deletes the whole profile. The next access materializes a fresh one.
func (s *Store) ClearProfile(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	err = s.call(ctx, "clear profile", func(ctx context.Context) error {
		return s.backend.DeleteProfile(ctx, email)
	})
	if err != nil {
		return err
	}
	lgr.Printf("[INFO] profile of %s cleared", email)
	return nil
}

// call runs fn under the store timeout and wraps any failure into a StorageError
func (s *Store) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		lgr.Printf("[WARN] %s failed: %v", op, err)
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// dedupInterests keeps the first of exactly repeated entries
func dedupInterests(interests []string) []string {
	res := make([]string, 0, len(interests))
	seen := make(map[string]struct{}, len(interests))
	for _, i := range interests {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		res = append(res, i)
	}
	return res
}

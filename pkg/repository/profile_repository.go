package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/facultyscope/pkg/db"
	"github.com/umputun/facultyscope/pkg/domain"
)

// ProfileRepository stores user profiles in three tables: the profile row, its interests and
// its favorites. Every mutation runs as one transaction of conditional statements, so
// concurrent calls for the same email never lose an update.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the profile for email, creating an empty one if it doesn't exist
func (r *ProfileRepository) GetOrCreate(ctx context.Context, email string, now time.Time) (*domain.UserProfile, error) {
	var profile *domain.UserProfile
	err := inTx(ctx, r.db, "get profile", func(tx *sqlx.Tx) error {
		if err := ensureProfile(ctx, tx, email, now); err != nil {
			return err
		}

		var row db.UserProfile
		query := tx.Rebind("SELECT email, created_at, last_updated FROM user_profiles WHERE email = ?")
		if err := tx.GetContext(ctx, &row, query, email); err != nil {
			return fmt.Errorf("select profile: %w", err)
		}

		interests, err := selectInterests(ctx, tx, email)
		if err != nil {
			return err
		}
		favorites, err := selectFavorites(ctx, tx, email)
		if err != nil {
			return err
		}

		profile = &domain.UserProfile{
			Email:           row.Email,
			Interests:       interests,
			FavoriteFaculty: favorites,
			CreatedAt:       row.CreatedAt,
			LastUpdated:     row.LastUpdated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// ReplaceInterests replaces the whole interest list, creating the profile if needed.
// Duplicates in interests are skipped, keeping the first occurrence.
func (r *ProfileRepository) ReplaceInterests(ctx context.Context, email string, interests []string, now time.Time) error {
	return inTx(ctx, r.db, "replace interests", func(tx *sqlx.Tx) error {
		upsert := tx.Rebind(`
			INSERT INTO user_profiles (email, created_at, last_updated) VALUES (?, ?, ?)
			ON CONFLICT (email) DO UPDATE SET last_updated = excluded.last_updated
		`)
		if _, err := tx.ExecContext(ctx, upsert, email, now, now); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM profile_interests WHERE email = ?"), email); err != nil {
			return fmt.Errorf("delete interests: %w", err)
		}

		insert := tx.Rebind(`
			INSERT INTO profile_interests (email, position, interest) VALUES (?, ?, ?)
			ON CONFLICT (email, interest) DO NOTHING
		`)
		for i, interest := range interests {
			if _, err := tx.ExecContext(ctx, insert, email, i+1, interest); err != nil {
				return fmt.Errorf("insert interest %q: %w", interest, err)
			}
		}
		return nil
	})
}

// AddInterest appends interest unless already present, creating the profile if needed.
// Returns true if the interest was added.
func (r *ProfileRepository) AddInterest(ctx context.Context, email, interest string, now time.Time) (bool, error) {
	var added bool
	err := inTx(ctx, r.db, "add interest", func(tx *sqlx.Tx) error {
		if err := ensureProfile(ctx, tx, email, now); err != nil {
			return err
		}

		query := tx.Rebind(`
			INSERT INTO profile_interests (email, position, interest)
			VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM profile_interests WHERE email = ?), ?)
			ON CONFLICT (email, interest) DO NOTHING
		`)
		res, err := tx.ExecContext(ctx, query, email, email, interest)
		if err != nil {
			return fmt.Errorf("insert interest: %w", err)
		}
		if added, err = affected(res); err != nil || !added {
			return err
		}
		return touchProfile(ctx, tx, email, now)
	})
	return added, err
}

// RemoveInterest removes interest from the profile. Doesn't create a missing profile.
// Returns true if the interest was present.
func (r *ProfileRepository) RemoveInterest(ctx context.Context, email, interest string, now time.Time) (bool, error) {
	var removed bool
	err := inTx(ctx, r.db, "remove interest", func(tx *sqlx.Tx) error {
		query := tx.Rebind("DELETE FROM profile_interests WHERE email = ? AND interest = ?")
		res, err := tx.ExecContext(ctx, query, email, interest)
		if err != nil {
			return fmt.Errorf("delete interest: %w", err)
		}
		if removed, err = affected(res); err != nil || !removed {
			return err
		}
		return touchProfile(ctx, tx, email, now)
	})
	return removed, err
}

// AddFavorite stores fav unless the faculty is already a favorite, creating the profile
// if needed. Returns true if the favorite was added.
func (r *ProfileRepository) AddFavorite(ctx context.Context, email string, fav domain.FavoriteRecord, now time.Time) (bool, error) {
	var added bool
	err := inTx(ctx, r.db, "add favorite", func(tx *sqlx.Tx) error {
		if err := ensureProfile(ctx, tx, email, now); err != nil {
			return err
		}

		query := tx.Rebind(`
			INSERT INTO profile_favorites (email, faculty_id, faculty_name, university_name, added_at, seq)
			VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM profile_favorites WHERE email = ?))
			ON CONFLICT (email, faculty_id) DO NOTHING
		`)
		res, err := tx.ExecContext(ctx, query, email, fav.FacultyID, fav.FacultyName, fav.UniversityName, fav.AddedAt, email)
		if err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
		if added, err = affected(res); err != nil || !added {
			return err
		}
		return touchProfile(ctx, tx, email, now)
	})
	return added, err
}

// RemoveFavorite removes the favorite for facultyID. Returns true if it was present.
func (r *ProfileRepository) RemoveFavorite(ctx context.Context, email string, facultyID int64, now time.Time) (bool, error) {
	var removed bool
	err := inTx(ctx, r.db, "remove favorite", func(tx *sqlx.Tx) error {
		query := tx.Rebind("DELETE FROM profile_favorites WHERE email = ? AND faculty_id = ?")
		res, err := tx.ExecContext(ctx, query, email, facultyID)
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		if removed, err = affected(res); err != nil || !removed {
			return err
		}
		return touchProfile(ctx, tx, email, now)
	})
	return removed, err
}

// Favorites returns favorites in the order they were added
func (r *ProfileRepository) Favorites(ctx context.Context, email string) ([]domain.FavoriteRecord, error) {
	var rows []db.Favorite
	query := r.db.Rebind(`
		SELECT email, faculty_id, faculty_name, university_name, added_at
		FROM profile_favorites WHERE email = ?
		ORDER BY seq, faculty_id
	`)
	if err := r.db.SelectContext(ctx, &rows, query, email); err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return toDomainFavorites(rows), nil
}

// IsFavorite checks if facultyID is among the favorites of email
func (r *ProfileRepository) IsFavorite(ctx context.Context, email string, facultyID int64) (bool, error) {
	var exists bool
	query := r.db.Rebind("SELECT EXISTS(SELECT 1 FROM profile_favorites WHERE email = ? AND faculty_id = ?)")
	if err := r.db.GetContext(ctx, &exists, query, email, facultyID); err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

// ClearFavorites removes all favorites of an existing profile and keeps its interests
func (r *ProfileRepository) ClearFavorites(ctx context.Context, email string, now time.Time) error {
	return inTx(ctx, r.db, "clear favorites", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM profile_favorites WHERE email = ?"), email); err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		return touchProfile(ctx, tx, email, now)
	})
}

// DeleteProfile removes the profile with its interests and favorites
func (r *ProfileRepository) DeleteProfile(ctx context.Context, email string) error {
	return inTx(ctx, r.db, "delete profile", func(tx *sqlx.Tx) error {
		for _, table := range []string{"profile_favorites", "profile_interests", "user_profiles"} {
			query := tx.Rebind("DELETE FROM " + table + " WHERE email = ?") //nolint:gosec // table names are constants
			if _, err := tx.ExecContext(ctx, query, email); err != nil {
				return fmt.Errorf("delete from %s: %w", table, err)
			}
		}
		return nil
	})
}

// ensureProfile inserts an empty profile row unless one exists
func ensureProfile(ctx context.Context, tx *sqlx.Tx, email string, now time.Time) error {
	query := tx.Rebind(`
		INSERT INTO user_profiles (email, created_at, last_updated) VALUES (?, ?, ?)
		ON CONFLICT (email) DO NOTHING
	`)
	if _, err := tx.ExecContext(ctx, query, email, now, now); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	return nil
}

// touchProfile refreshes last_updated of an existing profile
func touchProfile(ctx context.Context, tx *sqlx.Tx, email string, now time.Time) error {
	query := tx.Rebind("UPDATE user_profiles SET last_updated = ? WHERE email = ?")
	if _, err := tx.ExecContext(ctx, query, now, email); err != nil {
		return fmt.Errorf("touch profile: %w", err)
	}
	return nil
}

func selectInterests(ctx context.Context, tx *sqlx.Tx, email string) ([]string, error) {
	interests := []string{}
	query := tx.Rebind("SELECT interest FROM profile_interests WHERE email = ? ORDER BY position")
	if err := tx.SelectContext(ctx, &interests, query, email); err != nil {
		return nil, fmt.Errorf("select interests: %w", err)
	}
	return interests, nil
}

func selectFavorites(ctx context.Context, tx *sqlx.Tx, email string) ([]domain.FavoriteRecord, error) {
	var rows []db.Favorite
	query := tx.Rebind(`
		SELECT email, faculty_id, faculty_name, university_name, added_at
		FROM profile_favorites WHERE email = ?
		ORDER BY seq, faculty_id
	`)
	if err := tx.SelectContext(ctx, &rows, query, email); err != nil {
		return nil, fmt.Errorf("select favorites: %w", err)
	}
	return toDomainFavorites(rows), nil
}

// toDomainFavorites converts favorite rows to domain records, never returning nil
func toDomainFavorites(rows []db.Favorite) []domain.FavoriteRecord {
	res := make([]domain.FavoriteRecord, len(rows))
	for i, f := range rows {
		res[i] = domain.FavoriteRecord{
			FacultyID:      f.FacultyID,
			FacultyName:    f.FacultyName,
			UniversityName: f.UniversityName,
			AddedAt:        f.AddedAt,
		}
	}
	return res
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/facultyscope/pkg/db"
	"github.com/umputun/facultyscope/pkg/domain"
)

// FacultyRepository runs read queries against the faculty, university and keyword tables
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Resolve returns the faculty with its affiliation name, or domain.ErrFacultyNotFound
func (r *FacultyRepository) Resolve(ctx context.Context, facultyID int64) (*domain.Faculty, error) {
	var row db.Faculty
	query := r.db.Rebind(`
		SELECT f.id, f.name, u.name AS affiliation_name
		FROM faculty f
		LEFT JOIN university u ON u.id = f.university_id
		WHERE f.id = ?
	`)
	err := r.db.GetContext(ctx, &row, query, facultyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve faculty %d: %w", facultyID, err)
	}
	return &domain.Faculty{ID: row.ID, Name: row.Name, AffiliationName: row.AffiliationName.String}, nil
}

// Keywords returns all keyword names in alphabetical order
func (r *FacultyRepository) Keywords(ctx context.Context) ([]string, error) {
	keywords := []string{}
	if err := r.db.SelectContext(ctx, &keywords, "SELECT DISTINCT name FROM keyword ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get keywords: %w", err)
	}
	return keywords, nil
}

// Universities returns all university names in alphabetical order
func (r *FacultyRepository) Universities(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.db.SelectContext(ctx, &names, "SELECT DISTINCT name FROM university ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get universities: %w", err)
	}
	return names, nil
}

// FacultyByKeywords returns faculty interested in any of the keywords, optionally limited to
// one university. Faculty matching more keywords come first.
func (r *FacultyRepository) FacultyByKeywords(ctx context.Context, keywords []string, university string, limit int) ([]domain.FacultyCard, error) {
	if len(keywords) == 0 {
		return []domain.FacultyCard{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT f.name, f.position, f.photo_url, f.email,
		       u.name AS university_name, u.photo_url AS university_photo_url
		FROM faculty f
		JOIN faculty_keyword fk ON f.id = fk.faculty_id
		JOIN keyword k ON k.id = fk.keyword_id
		JOIN university u ON f.university_id = u.id
		WHERE k.name IN (?)`
	args := []any{keywords}
	if university != "" {
		query += " AND u.name = ?"
		args = append(args, university)
	}
	query += `
		GROUP BY f.id, f.name, f.position, f.photo_url, f.email, u.id, u.name, u.photo_url
		ORDER BY COUNT(DISTINCT k.id) DESC, f.name
		LIMIT ?`
	args = append(args, limit)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("expand keywords: %w", err)
	}

	var rows []db.FacultyCard
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get faculty by keywords: %w", err)
	}

	cards := make([]domain.FacultyCard, len(rows))
	for i, c := range rows {
		cards[i] = domain.FacultyCard{
			Name:               c.Name,
			Position:           c.Position.String,
			PhotoURL:           c.PhotoURL.String,
			Email:              c.Email.String,
			UniversityName:     c.UniversityName,
			UniversityPhotoURL: c.UniversityPhotoURL.String,
		}
	}
	return cards, nil
}

// UniversityPublicationCounts returns universities ranked by the number of distinct
// publications tagged with keyword (case-insensitive) written by their faculty
func (r *FacultyRepository) UniversityPublicationCounts(ctx context.Context, keyword string, limit int) ([]domain.UniversityCount, error) {
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Rebind(`
		SELECT u.name AS university, COUNT(DISTINCT p.id) AS total
		FROM publication p
		JOIN publication_keyword pk ON pk.publication_id = p.id
		JOIN keyword k ON k.id = pk.keyword_id
		JOIN faculty_publication fp ON fp.publication_id = p.id
		JOIN faculty f ON f.id = fp.faculty_id
		JOIN university u ON u.id = f.university_id
		WHERE LOWER(k.name) = LOWER(?)
		GROUP BY u.id, u.name
		ORDER BY total DESC, u.name
		LIMIT ?
	`)

	var rows []db.UniversityCount
	if err := r.db.SelectContext(ctx, &rows, query, keyword, limit); err != nil {
		return nil, fmt.Errorf("get university publication counts: %w", err)
	}

	res := make([]domain.UniversityCount, len(rows))
	for i, row := range rows {
		res[i] = domain.UniversityCount{University: row.University, Total: row.Total}
	}
	return res, nil
}

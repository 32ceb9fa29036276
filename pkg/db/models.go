package db

import (
	"database/sql"
	"time"
)

type (
	// NullString is a type alias for sql.NullString
	NullString = sql.NullString
	// NullInt64 is a type alias for sql.NullInt64
	NullInt64 = sql.NullInt64
)

// UserProfile is a row of the user_profiles table
type UserProfile struct {
	Email       string    `db:"email"`
	CreatedAt   time.Time `db:"created_at"`
	LastUpdated time.Time `db:"last_updated"`
}

// Interest is a row of the profile_interests table
type Interest struct {
	Email    string `db:"email"`
	Position int64  `db:"position"`
	Interest string `db:"interest"`
}

// Favorite is a row of the profile_favorites table
type Favorite struct {
	Email          string    `db:"email"`
	FacultyID      int64     `db:"faculty_id"`
	FacultyName    string    `db:"faculty_name"`
	UniversityName string    `db:"university_name"`
	AddedAt        time.Time `db:"added_at"`
}

// Faculty is a faculty row joined with its university name
type Faculty struct {
	ID              int64      `db:"id"`
	Name            string     `db:"name"`
	AffiliationName NullString `db:"affiliation_name"`
}

// FacultyCard is a keyword search result row
type FacultyCard struct {
	Name               string     `db:"name"`
	Position           NullString `db:"position"`
	PhotoURL           NullString `db:"photo_url"`
	Email              NullString `db:"email"`
	UniversityName     string     `db:"university_name"`
	UniversityPhotoURL NullString `db:"university_photo_url"`
}

// UniversityCount is an aggregated publication count per university
type UniversityCount struct {
	University string `db:"university"`
	Total      int    `db:"total"`
}

package domain

import "time"

// UserProfile represents a user's saved research interests and favorite faculty
type UserProfile struct {
	Email           string
	Interests       []string
	FavoriteFaculty []FavoriteRecord
	CreatedAt       time.Time
	LastUpdated     time.Time
}

// FavoriteRecord is a favorited faculty member with a snapshot of display fields
// taken at favorite time. The snapshot is not refreshed when the faculty record changes.
type FavoriteRecord struct {
	FacultyID      int64
	FacultyName    string
	UniversityName string
	AddedAt        time.Time
}

// HasInterest reports whether the profile contains the interest
func (p *UserProfile) HasInterest(interest string) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// HasFavorite reports whether the faculty is in the profile's favorites
func (p *UserProfile) HasFavorite(facultyID int64) bool {
	for _, f := range p.FavoriteFaculty {
		if f.FacultyID == facultyID {
			return true
		}
	}
	return false
}

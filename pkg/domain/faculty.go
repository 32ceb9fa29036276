package domain

import "errors"

// ErrFacultyNotFound is returned by faculty directories when an id does not resolve
var ErrFacultyNotFound = errors.New("faculty not found")

// Faculty is the minimal faculty view used for favorite snapshots
type Faculty struct {
	ID              int64
	Name            string
	AffiliationName string
}

// FacultyCard is a faculty search result row
type FacultyCard struct {
	Name               string
	Position           string
	PhotoURL           string
	Email              string
	UniversityName     string
	UniversityPhotoURL string
}

// FacultyProfile is a faculty document with its affiliation and publication ids
type FacultyProfile struct {
	ID             int64
	Name           string
	Position       string
	Email          string
	Phone          string
	PhotoURL       string
	Affiliation    University
	Keywords       []KeywordScore
	PublicationIDs []int64
}

// University is a faculty affiliation
type University struct {
	ID       int64
	Name     string
	PhotoURL string
}

// KeywordScore is a keyword with its relevance score
type KeywordScore struct {
	Name  string
	Score float64
}

// Publication is a publication summary
type Publication struct {
	ID           int64
	Title        string
	Venue        string
	Year         int
	NumCitations int
}

// UniversityCount is a publication count per university for a keyword
type UniversityCount struct {
	University string
	Total      int
}

// YearCount is a publication count for a single year
type YearCount struct {
	Year  int
	Count int
}

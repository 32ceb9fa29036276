package server

import (
	"time"

	"github.com/umputun/facultyscope/pkg/domain"
)

// response types keep json names out of the domain package

type profileResponse struct {
	Email           string             `json:"email"`
	Interests       []string           `json:"interests"`
	FavoriteFaculty []favoriteResponse `json:"favoriteFaculty"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdated     time.Time          `json:"lastUpdated"`
}

type favoriteResponse struct {
	FacultyID      int64     `json:"facultyId"`
	FacultyName    string    `json:"facultyName"`
	UniversityName string    `json:"universityName"`
	AddedAt        time.Time `json:"addedAt"`
}

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Name    string          `json:"name"`
	Profile profileResponse `json:"profile"`
}

type interestsRequest struct {
	Interests []string `json:"interests"`
}

type facultyCardResponse struct {
	Name               string `json:"name"`
	Position           string `json:"position"`
	PhotoURL           string `json:"photoUrl"`
	Email              string `json:"email"`
	UniversityName     string `json:"universityName"`
	UniversityPhotoURL string `json:"universityPhotoUrl"`
}

type universityCountResponse struct {
	University string `json:"university"`
	Total      int    `json:"total"`
}

type yearCountResponse struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type networkNodeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type networkEdgeResponse struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type networkResponse struct {
	Nodes []networkNodeResponse `json:"nodes"`
	Edges []networkEdgeResponse `json:"edges"`
}

type facultyResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Position     string                 `json:"position"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	PhotoURL     string                 `json:"photoUrl"`
	Affiliation  universityResponse     `json:"affiliation"`
	Keywords     []keywordScoreResponse `json:"keywords"`
	Publications []publicationResponse  `json:"publications,omitempty"`
	Favorite     *bool                  `json:"favorite,omitempty"`
}

type universityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type keywordScoreResponse struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type publicationResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Venue        string `json:"venue"`
	Year         int    `json:"year"`
	NumCitations int    `json:"numCitations"`
}

type overviewResponse struct {
	Keyword      string                    `json:"keyword"`
	Network      *networkResponse          `json:"network,omitempty"`
	Trend        []yearCountResponse       `json:"trend,omitempty"`
	Universities []universityCountResponse `json:"universities"`
}

type backendResponse struct {
	Name      string    `json:"name"`
	Up        bool      `json:"up"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		Email:           p.Email,
		Interests:       nonNil(p.Interests),
		FavoriteFaculty: toFavoritesResponse(p.FavoriteFaculty),
		CreatedAt:       p.CreatedAt,
		LastUpdated:     p.LastUpdated,
	}
}

func toFavoritesResponse(favs []domain.FavoriteRecord) []favoriteResponse {
	res := make([]favoriteResponse, len(favs))
	for i, f := range favs {
		res[i] = favoriteResponse{
			FacultyID:      f.FacultyID,
			FacultyName:    f.FacultyName,
			UniversityName: f.UniversityName,
			AddedAt:        f.AddedAt,
		}
	}
	return res
}

func toFacultyCardsResponse(cards []domain.FacultyCard) []facultyCardResponse {
	res := make([]facultyCardResponse, len(cards))
	for i, c := range cards {
		res[i] = facultyCardResponse{
			Name:               c.Name,
			Position:           c.Position,
			PhotoURL:           c.PhotoURL,
			Email:              c.Email,
			UniversityName:     c.UniversityName,
			UniversityPhotoURL: c.UniversityPhotoURL,
		}
	}
	return res
}

func toUniversityCountsResponse(counts []domain.UniversityCount) []universityCountResponse {
	res := make([]universityCountResponse, len(counts))
	for i, c := range counts {
		res[i] = universityCountResponse{University: c.University, Total: c.Total}
	}
	return res
}

func toTrendResponse(trend []domain.YearCount) []yearCountResponse {
	res := make([]yearCountResponse, len(trend))
	for i, y := range trend {
		res[i] = yearCountResponse{Year: y.Year, Count: y.Count}
	}
	return res
}

func toNetworkResponse(n domain.Network) networkResponse {
	res := networkResponse{
		Nodes: make([]networkNodeResponse, len(n.Nodes)),
		Edges: make([]networkEdgeResponse, len(n.Edges)),
	}
	for i, node := range n.Nodes {
		res.Nodes[i] = networkNodeResponse{ID: node.ID, Label: node.Label, Kind: string(node.Kind)}
	}
	for i, e := range n.Edges {
		res.Edges[i] = networkEdgeResponse{Source: e.Source, Target: e.Target}
	}
	return res
}

func toFacultyResponse(f *domain.FacultyProfile) facultyResponse {
	aff := universityResponse{ID: f.Affiliation.ID, Name: f.Affiliation.Name, PhotoURL: f.Affiliation.PhotoURL}
	res := facultyResponse{
		ID:          f.ID,
		Name:        f.Name,
		Position:    f.Position,
		Email:       f.Email,
		Phone:       f.Phone,
		PhotoURL:    f.PhotoURL,
		Affiliation: aff,
		Keywords:    make([]keywordScoreResponse, len(f.Keywords)),
	}
	for i, k := range f.Keywords {
		res.Keywords[i] = keywordScoreResponse{Name: k.Name, Score: k.Score}
	}
	return res
}

func toPublicationsResponse(pubs []domain.Publication) []publicationResponse {
	res := make([]publicationResponse, len(pubs))
	for i, p := range pubs {
		res[i] = publicationResponse{ID: p.ID, Title: p.Title, Venue: p.Venue, Year: p.Year, NumCitations: p.NumCitations}
	}
	return res
}

func toBackendsResponse(backends []domain.BackendStatus) []backendResponse {
	res := make([]backendResponse, len(backends))
	for i, b := range backends {
		res[i] = backendResponse{Name: b.Name, Up: b.Up, Error: b.Error, CheckedAt: b.CheckedAt}
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

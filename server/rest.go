package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/facultyscope/pkg/domain"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
	topPublications    = 5
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
		"stores": map[string]bool{
			"documents": s.stores.Documents != nil,
			"graph":     s.stores.Graph != nil,
		},
	}
	if s.stores.Health != nil {
		status["backends"] = toBackendsResponse(s.stores.Health.Status())
	}
	renderJSON(w, r, http.StatusOK, status)
}

// loginHandler materializes the profile of a user. With ResetFavoritesOnLogin favorites
// are cleared on every login.
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if s.cfg.ResetFavoritesOnLogin {
		if err := s.stores.Profiles.ClearFavorites(ctx, req.Email); err != nil {
			renderStoreError(w, r, err)
			return
		}
	}
	p, err := s.stores.Profiles.GetProfile(ctx, req.Email)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	lgr.Printf("[INFO] login %q <%s>", req.Name, p.Email)
	renderJSON(w, r, http.StatusOK, loginResponse{Name: req.Name, Profile: toProfileResponse(p)})
}

func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.stores.Profiles.GetProfile(r.Context(), r.PathValue("email"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileResponse(p))
}

func (s *Server) clearProfileHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Profiles.ClearProfile(r.Context(), r.PathValue("email")); err != nil {
		renderStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// saveInterestsHandler replaces interests and returns the updated profile
func (s *Server) saveInterestsHandler(w http.ResponseWriter, r *http.Request) {
	var req interestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	email := r.PathValue("email")
	if err := s.stores.Profiles.SaveInterests(r.Context(), email, req.Interests); err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.getProfileHandler(w, r)
}

// addInterestHandler adds ?interest=, passed as a query parameter so keywords may contain slashes
func (s *Server) addInterestHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Profiles.AddInterest(r.Context(), r.PathValue("email"), r.URL.Query().Get("interest")); err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.getProfileHandler(w, r)
}

func (s *Server) removeInterestHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Profiles.RemoveInterest(r.Context(), r.PathValue("email"), r.URL.Query().Get("interest")); err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.getProfileHandler(w, r)
}

func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	favs, err := s.stores.Profiles.ListFavorites(r.Context(), r.PathValue("email"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toFavoritesResponse(favs))
}

func (s *Server) clearFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Profiles.ClearFavorites(r.Context(), r.PathValue("email")); err != nil {
		renderStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addFavoriteHandler returns {"added": false} both for unknown faculty and for repeated adds
func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid faculty ID"), http.StatusBadRequest)
		return
	}
	added, err := s.stores.Profiles.AddFavorite(r.Context(), r.PathValue("email"), id)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"added": added})
}

func (s *Server) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid faculty ID"), http.StatusBadRequest)
		return
	}
	if err := s.stores.Profiles.RemoveFavorite(r.Context(), r.PathValue("email"), id); err != nil {
		renderStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) keywordsHandler(w http.ResponseWriter, r *http.Request) {
	s.renderList(w, r, s.stores.Keywords)
}

func (s *Server) graphKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	s.renderList(w, r, s.stores.GraphKeywords)
}

func (s *Server) universitiesHandler(w http.ResponseWriter, r *http.Request) {
	univs, err := s.stores.Academic.Universities(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(univs))
}

// facultySearchHandler finds faculty by one or more keyword params and an optional university
func (s *Server) facultySearchHandler(w http.ResponseWriter, r *http.Request) {
	var keywords []string
	for _, k := range r.URL.Query()["keyword"] {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		renderError(w, r, fmt.Errorf("at least one keyword is required"), http.StatusBadRequest)
		return
	}
	limit, err := parseLimit(r, defaultSearchLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	cards, err := s.stores.Academic.FacultyByKeywords(r.Context(), keywords, r.URL.Query().Get("university"), limit)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toFacultyCardsResponse(cards))
}

func (s *Server) keywordUniversitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultSearchLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	counts, err := s.stores.Academic.UniversityPublicationCounts(r.Context(), r.PathValue("keyword"), limit)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toUniversityCountsResponse(counts))
}

func (s *Server) keywordNetworkHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Graph == nil {
		renderStoreError(w, r, fmt.Errorf("graph %w", errNotConfigured))
		return
	}
	net, err := s.stores.Graph.KeywordNetwork(r.Context(), r.PathValue("keyword"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toNetworkResponse(net))
}

func (s *Server) keywordTrendHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	from, to := s.trendRange()
	trend, err := s.stores.Documents.KeywordTrend(r.Context(), r.PathValue("keyword"), from, to)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toTrendResponse(trend))
}

// keywordOverviewHandler fetches network, trend and top universities of a keyword concurrently.
// Network and trend are skipped if their stores are not configured.
func (s *Server) keywordOverviewHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.PathValue("keyword")
	res := overviewResponse{Keyword: keyword}

	g, ctx := errgroup.WithContext(r.Context())
	if s.stores.Graph != nil {
		g.Go(func() error {
			net, err := s.stores.Graph.KeywordNetwork(ctx, keyword)
			if err != nil {
				return fmt.Errorf("network: %w", err)
			}
			nr := toNetworkResponse(net)
			res.Network = &nr
			return nil
		})
	}
	if s.stores.Documents != nil {
		g.Go(func() error {
			from, to := s.trendRange()
			trend, err := s.stores.Documents.KeywordTrend(ctx, keyword, from, to)
			if err != nil {
				return fmt.Errorf("trend: %w", err)
			}
			res.Trend = toTrendResponse(trend)
			return nil
		})
	}
	g.Go(func() error {
		counts, err := s.stores.Academic.UniversityPublicationCounts(ctx, keyword, defaultSearchLimit)
		if err != nil {
			return fmt.Errorf("universities: %w", err)
		}
		res.Universities = toUniversityCountsResponse(counts)
		return nil
	})

	if err := g.Wait(); err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// facultyByUniversityHandler lists faculty documents of the university query param
func (s *Server) facultyByUniversityHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	university := strings.TrimSpace(r.URL.Query().Get("university"))
	if university == "" {
		renderError(w, r, fmt.Errorf("university is required"), http.StatusBadRequest)
		return
	}
	faculty, err := s.stores.Documents.FacultyByUniversity(r.Context(), university)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	res := make([]facultyResponse, len(faculty))
	for i := range faculty {
		res[i] = toFacultyResponse(&faculty[i])
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) facultyUniversitiesHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	univs, err := s.stores.Documents.Universities(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(univs))
}

func (s *Server) facultyNamesHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	names, err := s.stores.Documents.FacultyNames(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(names))
}

func (s *Server) facultyByNameHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	f, err := s.stores.Documents.FacultyByName(r.Context(), r.PathValue("name"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.renderFacultyProfile(w, r, f)
}

func (s *Server) facultyByIDHandler(w http.ResponseWriter, r *http.Request) {
	if s.stores.Documents == nil {
		renderStoreError(w, r, fmt.Errorf("document %w", errNotConfigured))
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid faculty ID"), http.StatusBadRequest)
		return
	}
	f, err := s.stores.Documents.FacultyByID(r.Context(), id)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.renderFacultyProfile(w, r, f)
}

// renderFacultyProfile renders a faculty member with top publications. With the email query
// param it also reports whether the faculty is among that user's favorites.
func (s *Server) renderFacultyProfile(w http.ResponseWriter, r *http.Request, f *domain.FacultyProfile) {
	ctx := r.Context()
	res := toFacultyResponse(f)

	pubs, err := s.stores.Documents.TopPublications(ctx, f.PublicationIDs, topPublications)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	res.Publications = toPublicationsResponse(pubs)

	if email := r.URL.Query().Get("email"); email != "" {
		fav, err := s.stores.Profiles.IsFavorite(ctx, email, f.ID)
		if err != nil {
			renderStoreError(w, r, err)
			return
		}
		res.Favorite = &fav
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) renderList(w http.ResponseWriter, r *http.Request, l Lister) {
	if l == nil {
		renderStoreError(w, r, fmt.Errorf("keyword %w", errNotConfigured))
		return
	}
	vals, err := l.List(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(vals))
}

// trendRange returns the inclusive year range of keyword trends, ending with the current year
func (s *Server) trendRange() (from, to int) {
	to = s.cfg.Now().Year()
	return to - s.cfg.TrendYears, to
}

// parseLimit reads the limit query param, def if absent
func parseLimit(r *http.Request, def int) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 || limit > maxSearchLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxSearchLimit)
	}
	return limit, nil
}

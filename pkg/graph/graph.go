// Package graph reads the keyword/faculty graph from Neo4j
package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/umputun/facultyscope/pkg/domain"
)

// NetworkLimit caps the number of faculty rows in a keyword network
const NetworkLimit = 20

// Config defines Neo4j connection parameters
type Config struct {
	URI      string
	User     string
	Password string
	Database string
}

// Store runs read queries against the academic graph
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// New connects to Neo4j and verifies connectivity
func New(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	lgr.Printf("[INFO] connected to neo4j at %s, database %q", cfg.URI, cfg.Database)
	return &Store{driver: driver, database: cfg.Database}, nil
}

// Close closes the driver
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Ping verifies the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Keywords returns names of keywords with at least one interested faculty member
func (s *Store) Keywords(ctx context.Context) ([]string, error) {
	session := s.session(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (f:FACULTY)-[:INTERESTED_IN]->(k:KEYWORD)
		RETURN DISTINCT k.name AS keyword
		ORDER BY keyword
	`
	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}

	keywords := []string{}
	for result.Next(ctx) {
		if kw := getString(result.Record(), "keyword"); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	return keywords, nil
}

// FacultyKeywords returns up to NetworkLimit faculty interested in keyword (case-insensitive)
// together with all other keywords they are interested in
func (s *Store) FacultyKeywords(ctx context.Context, keyword string) ([]domain.FacultyKeywords, error) {
	session := s.session(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (k:KEYWORD)
		WHERE toLower(k.name) = toLower($kw)
		WITH k
		MATCH (k)<-[:INTERESTED_IN]-(f:FACULTY)-[:INTERESTED_IN]->(other:KEYWORD)
		RETURN f.name AS faculty, k.name AS keyword, collect(DISTINCT other.name) AS co_keywords
		ORDER BY faculty
		LIMIT $limit
	`
	result, err := session.Run(ctx, query, map[string]any{"kw": keyword, "limit": NetworkLimit})
	if err != nil {
		return nil, fmt.Errorf("query keyword network for %q: %w", keyword, err)
	}

	rows := []domain.FacultyKeywords{}
	for result.Next(ctx) {
		rec := result.Record()
		rows = append(rows, domain.FacultyKeywords{
			Faculty:    getString(rec, "faculty"),
			Keyword:    getString(rec, "keyword"),
			CoKeywords: getStringSlice(rec, "co_keywords"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read keyword network for %q: %w", keyword, err)
	}
	return rows, nil
}

// KeywordNetwork returns the network around keyword, ready for rendering
func (s *Store) KeywordNetwork(ctx context.Context, keyword string) (domain.Network, error) {
	rows, err := s.FacultyKeywords(ctx, keyword)
	if err != nil {
		return domain.Network{}, err
	}
	return BuildNetwork(keyword, rows), nil
}

func (s *Store) session(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead, DatabaseName: s.database})
}

// BuildNetwork assembles nodes and edges from faculty rows. The root keyword gets one node,
// every faculty member is linked to it, and every co-keyword is linked to the faculty
// interested in it. Nodes are unique by id; the root keyword never appears as a co-keyword.
func BuildNetwork(keyword string, rows []domain.FacultyKeywords) domain.Network {
	net := domain.Network{Nodes: []domain.NetworkNode{}, Edges: []domain.NetworkEdge{}}
	seen := map[string]bool{}
	addNode := func(id, label string, kind domain.NodeKind) {
		if seen[id] {
			return
		}
		seen[id] = true
		net.Nodes = append(net.Nodes, domain.NetworkNode{ID: id, Label: label, Kind: kind})
	}

	root := keyword
	if len(rows) > 0 && rows[0].Keyword != "" {
		root = rows[0].Keyword // canonical spelling from the graph
	}
	rootID := nodeID(domain.NodeKeyword, root)
	addNode(rootID, root, domain.NodeKeyword)

	edges := map[domain.NetworkEdge]bool{}
	addEdge := func(src, dst string) {
		e := domain.NetworkEdge{Source: src, Target: dst}
		if edges[e] {
			return
		}
		edges[e] = true
		net.Edges = append(net.Edges, e)
	}

	for _, r := range rows {
		if r.Faculty == "" {
			continue
		}
		facID := nodeID(domain.NodeFaculty, r.Faculty)
		addNode(facID, r.Faculty, domain.NodeFaculty)
		addEdge(facID, rootID)

		for _, co := range r.CoKeywords {
			if co == "" || strings.EqualFold(co, root) {
				continue
			}
			coID := nodeID(domain.NodeCoKeyword, co)
			addNode(coID, co, domain.NodeCoKeyword)
			addEdge(facID, coID)
		}
	}
	return net
}

func nodeID(kind domain.NodeKind, name string) string {
	return string(kind) + ":" + strings.ToLower(name)
}

func getString(rec *neo4j.Record, key string) string {
	val, ok := rec.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getStringSlice(rec *neo4j.Record, key string) []string {
	val, ok := rec.Get(key)
	if !ok || val == nil {
		return []string{}
	}
	slice, ok := val.([]any)
	if !ok {
		return []string{}
	}
	res := make([]string, 0, len(slice))
	for _, v := range slice {
		if str, ok := v.(string); ok {
			res = append(res, str)
		}
	}
	return res
}

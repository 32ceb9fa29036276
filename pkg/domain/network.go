package domain

// NodeKind classifies nodes of a keyword network
type NodeKind string

const (
	NodeKeyword   NodeKind = "keyword"
	NodeFaculty   NodeKind = "faculty"
	NodeCoKeyword NodeKind = "co_keyword"
)

// FacultyKeywords is a faculty member interested in a keyword, with the other keywords
// that faculty member is interested in
type FacultyKeywords struct {
	Faculty    string
	Keyword    string
	CoKeywords []string
}

// NetworkNode is a node in the keyword network
type NetworkNode struct {
	ID    string
	Label string
	Kind  NodeKind
}

// NetworkEdge is a directed edge in the keyword network
type NetworkEdge struct {
	Source string
	Target string
}

// Network is a keyword co-occurrence network ready for rendering
type Network struct {
	Nodes []NetworkNode
	Edges []NetworkEdge
}

package mcsgraph

import "sync"

// selfLoopFlag marks a self-loop on the owning vertex by occupying the top
// bit of its label word (spec §3: "a vertex self-loop is flagged by setting
// the top bit of its label").
const selfLoopFlag = uint32(1) << 31

// MaxEdgeLabel is the largest edge label representable under the +1 offset
// encoding (label+1 must still fit in 16 bits; 0 stays reserved for "no
// edge" per spec §9's resolved directed-encoding ambiguity).
const MaxEdgeLabel = 0xFFFE

// GraphOption configures a Graph's policy flags before construction. It
// mirrors the teacher library's func(*T) option idiom (core.GraphOption).
type GraphOption func(*Graph)

// WithDirected marks the graph as directed: AddEdge records the forward
// label in the low 16 bits of the (v,w) cell and the same label, shifted
// into the high 16 bits, on the (w,v) cell (spec §3 adjacency encoding).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithEdgeLabelled marks the graph as edge-labelled (see EdgeLabelled).
// AddEdge records a WithEdgeLabel label whether or not this is set. Plain
// (unlabelled) graphs still pack a nonzero sentinel so adjacency tests
// stay a single word compare.
func WithEdgeLabelled() GraphOption {
	return func(g *Graph) { g.edgeLabelled = true }
}

// WithVertexLabelled marks the graph as vertex-labelled (see
// VertexLabelled). SetLabel records a label whether or not this is set;
// a vertex SetLabel never touches keeps label 0.
func WithVertexLabelled() GraphOption {
	return func(g *Graph) { g.vertexLabelled = true }
}

// Graph is a fixed-size, dense-adjacency labelled graph.
//
// It is mutable only between NewGraph and Freeze; mu guards that build
// window so a graph can be populated by a parser goroutine while other
// work proceeds, mirroring core.Graph's muVert/muEdgeAdj split without the
// adjacency-list bookkeeping that domain doesn't need. AdjWord, HasEdge
// and Label take no lock (the search engine calls them on the hottest
// loop in the program and cannot afford a mutex there); the other readers
// take a brief read lock.
type Graph struct {
	mu sync.RWMutex

	n              int
	directed       bool
	edgeLabelled   bool
	vertexLabelled bool
	frozen         bool

	adj   []uint32 // row-major n*n, cell (v,u) = adj[v*n+u]
	label []uint32 // per-vertex label, top bit reserved for self-loop flag
	name  string   // origin (file path or synthetic name), for diagnostics
}

// NewGraph allocates a Graph with n vertices, all unlabelled and with an
// empty adjacency matrix. Complexity: O(n²).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := &Graph{
		n:     n,
		adj:   make([]uint32, n*n),
		label: make([]uint32, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// N returns the vertex count. Complexity: O(1).
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Directed reports whether this graph records forward/reverse labels
// separately (spec §3 adjacency cell encoding). Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// EdgeLabelled reports whether non-default edge labels are meaningful on
// this graph. Complexity: O(1).
func (g *Graph) EdgeLabelled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeLabelled
}

// VertexLabelled reports whether non-default vertex labels are meaningful
// on this graph. Complexity: O(1).
func (g *Graph) VertexLabelled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexLabelled
}

// Name returns the graph's diagnostic name (typically its source file).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName records a diagnostic name (file path, synthetic identifier, ...).
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.name = name
}

// Freeze stops further mutation. After Freeze, AddEdge/SetLabel return
// ErrGraphFrozen; every reader remains available and lock-free from the
// caller's point of view (the mutex is still acquired for the brief
// flag check, but no writer can be contending once frozen).
func (g *Graph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

package mcsgraph

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	label uint32
}

// WithEdgeLabel sets the edge's label class (only meaningful on graphs
// built WithEdgeLabelled; unlabelled graphs should omit this and rely on
// the default class 0, which still yields a nonzero adjacency word).
func WithEdgeLabel(label uint32) EdgeOption {
	return func(c *edgeConfig) { c.label = label }
}

// checkIndex validates a vertex index without taking a lock; callers hold
// g.mu or rely on the graph being frozen (read-only) already.
func (g *Graph) checkIndex(v int) error {
	if v < 0 || v >= g.n {
		return ErrIndexOutOfRange
	}

	return nil
}

// SetLabel assigns v's label. A self-loop flag set by a prior AddEdge(v,v)
// is preserved (SetLabel only touches the low 31 bits). Complexity: O(1).
func (g *Graph) SetLabel(v int, label uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrGraphFrozen
	}
	if err := g.checkIndex(v); err != nil {
		return err
	}
	if label&selfLoopFlag != 0 {
		return ErrLabelOutOfRange
	}
	g.label[v] = (g.label[v] & selfLoopFlag) | label

	return nil
}

// AddEdge records an edge v->w (or the undirected edge {v,w} when the
// graph is not directed). v==w records a self-loop by setting the top bit
// of v's label instead of touching the adjacency matrix, matching
// original_source/graph.cc's add_edge convention.
//
// Directed graphs pack the forward label (offset by +1, so 0 means "no
// edge") into the low 16 bits of cell (v,w) and the same offset label into
// the high 16 bits of cell (w,v); undirected graphs assign the plain
// offset label symmetrically to both cells. Complexity: O(1).
func (g *Graph) AddEdge(v, w int, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrGraphFrozen
	}
	if err := g.checkIndex(v); err != nil {
		return err
	}
	if err := g.checkIndex(w); err != nil {
		return err
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.label > MaxEdgeLabel {
		return ErrLabelOutOfRange
	}

	if v == w {
		g.label[v] |= selfLoopFlag

		return nil
	}

	val := cfg.label + 1
	if g.directed {
		g.adj[v*g.n+w] |= val
		g.adj[w*g.n+v] |= val << 16
	} else {
		g.adj[v*g.n+w] = val
		g.adj[w*g.n+v] = val
	}

	return nil
}

// AdjWord returns the raw packed adjacency cell (v,u): low 16 bits are the
// forward label+1 from v to u (0 = no forward edge), high 16 bits are the
// reverse label+1 from u to v (always 0 on undirected graphs). The search
// engine's domain filter (mcsdomain) reads this directly; it never pays
// for a lock because graphs are frozen before a search starts.
//
// Complexity: O(1). Panics if v or u is out of range — this is a hot-path
// accessor and the caller (mcsdomain) always holds valid indices drawn
// from the graph's own vertex buffers.
func (g *Graph) AdjWord(v, u int) uint32 {
	return g.adj[v*g.n+u]
}

// HasEdge reports whether any forward or reverse edge exists between v
// and u (AdjWord(v,u) != 0). Complexity: O(1).
func (g *Graph) HasEdge(v, u int) bool {
	return g.adj[v*g.n+u] != 0
}

// Label returns vertex v's raw label word, including the self-loop flag
// bit. check_sol-style label comparisons (spec §8 property 1) compare this
// value bit-for-bit across graphs, exactly like the original's
// g.label[v] == g2.label[v2]. Complexity: O(1).
func (g *Graph) Label(v int) uint32 {
	return g.label[v]
}

// HasSelfLoop reports whether v carries a self-loop. Complexity: O(1).
func (g *Graph) HasSelfLoop(v int) bool {
	return g.label[v]&selfLoopFlag != 0
}

// Clone returns an independent deep copy, safe to mutate (e.g. to re-open
// a frozen graph for incremental experimentation) without affecting the
// original. Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		n:              g.n,
		directed:       g.directed,
		edgeLabelled:   g.edgeLabelled,
		vertexLabelled: g.vertexLabelled,
		frozen:         g.frozen,
		name:           g.name,
		adj:            make([]uint32, len(g.adj)),
		label:          make([]uint32, len(g.label)),
	}
	copy(out.adj, g.adj)
	copy(out.label, g.label)

	return out
}

// Package gformat reads the graph file formats recognised by the original
// McSplit-family tooling (spec §6 "Input graph formats") into mcsgraph.Graph
// values. It is deliberately thin glue: no search logic lives here, only
// format dispatch and line/word scanning, grounded on
// original_source/graph.cc's readGraph/readDimacsGraph/readLadGraph/
// readBinaryGraph/read_ioi_graph family.
//
// Supported formats, selected by a one-byte Format code:
//
//   - FormatDIMACS ('D'): "p edge n m", "e v w" (1-based), "n v lbl".
//   - FormatLAD ('L'): n, then per vertex "deg w1 … wdeg" (0-based).
//   - FormatBinary ('B') / FormatBinaryE ('E'): little-endian 16-bit words;
//     vertex count, per-vertex label, per-vertex neighbour list of
//     (target,label) pairs. Both codes use the same wire layout — the
//     origin carried two near-identical readers for the same format.
//   - FormatIOI ('I'): "n m", n vertex labels, m "v w" edges (0-based).
//
// Binary label compression follows the McSplit convention referenced in
// spec §6: k1 = ceil(log2(floor(0.33*n))) capped at 16, label = word >>
// (16-k1), edge labels carry a +1 offset so 0 unambiguously means "absent".
package gformat

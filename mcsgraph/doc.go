// Package mcsgraph defines the labelled graph representation shared by the
// maximum-common-subgraph search engine: a dense adjacency matrix plus
// per-vertex labels, built once and then frozen read-only for the duration
// of a search.
//
// What:
//
//   - Graph: fixed vertex count, n×n dense adjacency matrix of packed
//     uint32 cells (forward label in the low 16 bits, reverse label in the
//     high 16 bits for directed graphs), per-vertex uint32 label with the
//     top bit reserved as a self-loop flag.
//   - A graph is mutable only before Freeze; AddEdge/SetLabel after Freeze
//     return ErrGraphFrozen. This matches the search engine's assumption
//     (spec §3) that graphs never change once the search starts.
//   - DegreeSort / InducedSubgraph implement the driver's degree-descending
//     vertex pre-sort (spec §4.7 step 6) and the round-trip helper's
//     sub-graph extraction.
//
// Why:
//
//   - A dense matrix keeps adjacency tests O(1) with no pointer chasing,
//     which is what the branch-and-bound hot loop needs.
//   - Packing forward/reverse labels into one cell keeps the representation
//     identical for directed and undirected graphs; undirected graphs just
//     never populate the reverse half.
//
// Complexity:
//
//   - AddVertex-free construction: NewGraph(n) is O(n²).
//   - AddEdge / SetLabel / HasEdge / Label: O(1).
//   - DegreeSort: O(n² ) to compute degrees, O(n log n) to sort.
//   - InducedSubgraph: O(k²) for a k-vertex selection.
package mcsgraph

// Package search provides traversal helpers over core grids and implicit
// graphs: weighted shortest paths, BFS distance maps and flood-fill regions.
//
// Paths are recovered through an Arena of parent indices rather than linked
// node chains, so a search allocates one flat slice per run.
package search

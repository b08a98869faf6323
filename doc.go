// Package tesseract is a toolkit for shortest paths through four-dimensional
// mazes whose cells allow directed, possibly one-way moves, and for deciding
// which prizes along the way are worth a detour.
//
// 🚀 What is tesseract?
//
//	A small, dependency-light set of packages that brings together:
//		• Move model & maze store: eight move symbols, a dense size⁴ table
//		• Shortest paths: A* with an active-axis Manhattan heuristic
//		• Reference traversal: BFS, used as an optimality oracle
//		• Prize detours: per-prize round-trip pricing, optionally parallel
//		• Fixtures: open, corridor and random one-way maze builders
//		• Descriptors: YAML/JSON maze files and "(x, y)" coordinate tuples
//
// ✨ Why tesseract?
//
//   - Directed by default – a move from a to b never implies one back
//   - Deterministic – fixed neighbour order and insertion-order tie breaks
//   - Sentinel errors – errors.Is(err, astar.ErrNoPath) is a normal outcome
//   - Extensible – hooks (OnExpand, OnVisit) and functional options
//
// Packages:
//
//	maze/     — Coord, Move, MoveSet and the immutable Maze store
//	astar/    — A* shortest path, budgets, cancellation
//	bfs/      — breadth-first reachability and depths
//	prize/    — detour evaluation against a base path
//	builder/  — deterministic maze fixtures
//	loader/   — descriptor decoding and tuple parsing
//	cmd/      — the tesseract command line
//
// Move symbols (lowercase +1, uppercase −1):
//
//	x X   axis 0
//	y Y   axis 1
//	z Z   axis 2
//	w W   axis 3
//
//	go install github.com/katalvlaran/tesseract/cmd/tesseract@latest
package tesseract

// Package postman solves the Route Inspection problem (the Chinese Postman
// problem): find the cheapest closed walk that traverses every edge of a
// connected, undirected, positively weighted graph at least once.
//
// The module is organized as small single-purpose packages:
//
//	core/       — dense weighted Graph (weight matrix + traversal multigraph lists)
//	dijkstra/   — single-source shortest paths with predecessor reconstruction
//	matching/   — exhaustive minimum-weight perfect matching of odd vertices
//	euler/      — Eulerian circuit extraction (Fleury, Hierholzer) and validation
//	postman/    — the solver pipeline: odd vertices → pairing → augment → circuit
//	builder/    — deterministic graph constructors (cycle, grid, wheel, random…)
//	graphfile/  — YAML / TOML / JSON graph documents with validation
//	render/     — matrix, route and result printers (plain, styled, JSON)
//	cmd/postman — the command-line front end
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
// Vertices 0 and 2 have odd degree 3, so the diagonal 0–2 (or the cheapest
// path between them) is walked twice and the route closes back at the start.
//
//	go install github.com/katalvlaran/postman/cmd/postman@latest
//	postman demo
package postman

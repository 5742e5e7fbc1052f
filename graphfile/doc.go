// Package graphfile reads and writes graph descriptions for the postman
// solver in YAML, TOML or JSON.
//
// Document shape (YAML shown):
//
//	name: town            # optional
//	vertices: 6           # vertices 0..5 are added
//	start: 0              # optional, default 0
//	edges:
//	  - {from: 0, to: 1, weight: 1}
//	  - {from: 0, to: 3, weight: 2}
//
// Unknown keys are rejected in every format. Documents are validated with
// go-playground/validator before a graph is built: positive weights, no
// loops, endpoints and start inside [0, vertices). Duplicate edges are
// reported by core when Build adds them.
package graphfile

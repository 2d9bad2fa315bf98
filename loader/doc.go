// SPDX-License-Identifier: MIT

// Package loader reads and writes core.Graph files.
//
// YAML files (.yaml, .yml) are decoded with gopkg.in/yaml.v3. An edge without
// a weight has an unknown weight:
//
//	directed: true
//	vertices:
//	  - id: A
//	    attrs: {kind: hub}
//	edges:
//	  - {from: A, to: B, weight: 2.5}
//	  - {from: B, to: C}
//
// Adjacency files (.graph, .adj, .txt) hold one line per vertex:
//
//	0:1|2.5,2|?
//	1:
//	2:0|1
//
// The number before the colon must equal the line position. Each entry is
// dest|weight, where "?" is an unknown weight. Vertex ids are the decimal
// indexes and every vertex gets the attribute "label" holding its index.
// Entries naming an index with no line of its own are dropped, so that
// target stays unreachable.
//
// Errors:
//
//   - ErrUnknownFormat: Load was given an unrecognised extension.
//   - ErrFormat: the content does not parse; the message names the line or field.
package loader

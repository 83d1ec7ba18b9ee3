// Package textutil provides the small text normalization helpers shared by the
// listing parser.
//
// The primary use cases are:
//   - Collapsing the irregular whitespace pasted listings carry
//   - Rewriting "Last, First" instructor names into display order
//   - Re-casing instructor names the legacy export emits in all capitals
package textutil

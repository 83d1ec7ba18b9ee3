// Package listing extracts class records from pasted university course
// listings.
//
// Two known layouts are supported: a semi-columnar "tabular" export and an
// older multi-line "legacy" export. Detection is a one-shot substring
// heuristic with no confidence scoring; anything that is not recognizably
// tabular is walked as legacy and may legitimately produce nothing.
//
// The whole package is best effort and lossy by contract: unrecognized lines
// are skipped, partially decodable candidates are dropped, and a fully
// unparseable paste yields an empty slice. No parse failure is ever surfaced
// as an error, so callers always receive a (possibly empty) sequence.
package listing

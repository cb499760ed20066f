// Package elements loads the chemical element dataset rendered by ptable.
//
// The dataset is a JSON document with an "elements" array. Only a handful of
// fields are consumed:
//
//   - symbol, name: required
//   - atomic_mass: required
//   - electronegativity_pauling: optional, nil when unknown
//   - source: optional reference URL
//
// A [Dataset] is loaded once, either over HTTP with a [Fetcher] or from a
// local file with [LoadFile], and is never mutated afterwards.
package elements

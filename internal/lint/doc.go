// Package lint holds the structural rule catalog for metadata block
// documents: the severity model, per-rule override configuration, the rule
// dispatch engine, and the prefix-based typo heuristic.
//
// Rules are pure functions from document fragments to violation lists. The
// orchestrator (Validate) runs every applicable rule and concatenates the
// findings in discovery order; nothing short-circuits, so one pass surfaces
// all defects.
package lint

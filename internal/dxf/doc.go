// Package dxf reads the group-code/value line pairs of a drawing exchange
// file, captures its LAYER table and a whitelisted set of entities, and
// rebuilds a minimal, self-consistent file around them.
//
// Parsing is a single pass: a Cursor yields pairs, a Tracker follows the
// SECTION/TABLE nesting, and the extractors turn the relevant records into
// a Drawing. Rebuild then writes the header template, a regenerated LAYER
// table, a fixed table and block skeleton, the entities and the footer.
package dxf

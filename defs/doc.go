// Package defs holds the strongly-typed model of all game-balance content for
// the racing-management simulation: identifiers, scalar tuning tables and the
// entity definitions that make up a definition pack.
//
// # Reading Guide
//
// Start with these files:
//   - ids.go: one opaque identifier type per entity kind
//   - scalars.go: integer-only tuning constants shared by the simulation
//   - pack.go: the Pack aggregate and its copy-on-construct rules
//
// # Units
//
// Every quantity is an integer. Fractions are basis points (10000 = 100%),
// durations are milliseconds unless the field name says otherwise, and money
// is int64 cents. Floating-point types never appear in this package so that
// every consumer computes bit-exact results.
//
// # Related Packages
//
//   - defs/validate: proves a Pack is internally consistent
//   - defs/registry: O(1) typed lookup over a validated Pack
//   - defs/refpack: built-in reference content
package defs

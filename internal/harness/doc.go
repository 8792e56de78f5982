// Package harness runs declarative algebra scenarios under go test.
//
// A scenario is a YAML file naming input relations, a sequence of
// operation steps that bind results to names, and boolean assertions
// over the bound names. The harness builds everything in a fresh
// context, runs the steps in order, checks the assertions, and can
// compare the rendered grids against a golden file.
//
// Scenarios keep the algebra laws (double complement, identity
// elements, associativity and friends) legible: the fixture states the
// law, the golden file pins the grids.
package harness

// Package bitgrid is the in-memory reference implementation of the
// engine capability set.
//
// Relations are stored as dense row-major uint64 bitsets. Every
// operation is a plain word loop, which keeps the implementation easy to
// audit and makes it the fixture engine for the rel package's tests.
//
// REPRESENTATION INVARIANT:
// Bits past the last column in a row's final word are always zero.
// Universal, Complement and the vector ops re-mask after writing, so
// Equals, Includes and IsEmpty can compare raw words.
//
// Randomized fills draw from a per-manager PCG source. Seed the engine
// with WithSeed for reproducible fills in tests; an unseeded engine
// draws its seed once at manager creation.
package bitgrid

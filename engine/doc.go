// Package engine declares the capability a relation context consumes:
// a manager that owns relation storage, and relation handles that carry
// the primitive grid operations.
//
// The package defines interfaces only, plus the typed Error every
// primitive returns on failure. Implementations decide how bits are
// stored; engine/bitgrid ships a dense in-memory implementation, and the
// interfaces are shaped so a canonical decision-diagram backend can slot
// in without touching the core.
//
// CONTRACTS:
//
// Ownership:
// A Relation handle is valid only while its minting Manager is open.
// Callers (the rel package) guarantee a handle is never used after its
// manager closes - the engine is not required to detect it.
//
// Errors:
// Every fallible primitive returns *Error with a stable integer code.
// Errors are returned per call; there is no shared last-error slot, so
// results cannot be clobbered by a later call.
//
// Producing operations:
// Or, And, Transpose, Complement and Multiply write into the receiver,
// which the caller supplies pre-sized for the result. Input handles are
// never mutated.
package engine

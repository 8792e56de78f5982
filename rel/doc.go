// Package rel is the managed algebra layer over binary relations.
//
// A Context owns one engine manager and is the unit of isolation: every
// Relation is minted by exactly one Context, tracked under a reference
// number, and destroyed either explicitly or when the Context closes.
// Relations from different Contexts must never be combined; every
// binary operation rejects a foreign operand before touching the engine.
//
// Relation exposes the algebra (Empty, Universal, Identity, Meet, Join,
// Transpose, Complement, Compose), the comparisons (Equals, IsSubset,
// IsSuperset and the strict variants), bit-level mutation and vector
// enumeration. Producing operations mint their result through the owning
// Context, so every result is a fresh tracked handle of the correct
// dimension.
//
// OWNERSHIP:
//
// The Context exclusively owns its engine manager for its whole
// lifetime. Relations borrow the manager and never outlive the Context:
// Close destroys every tracked relation before releasing the manager,
// and a destroyed relation carries an explicit tag checked on every
// call. Reference numbers are monotonic and never reused, so a stale
// reference can never alias a live handle.
//
// CONCURRENCY:
//
// A Context and its Relations are not safe for concurrent use. All
// calls are synchronous; nothing blocks, retries or times out. Guard
// with external synchronization if you must share a Context.
//
// Every locally detected contract violation (bad dimension, foreign
// context, malformed bit pair, out-of-range probability) fails before
// any engine call. Engine failures surface as ENGINE_FAILURE errors
// carrying the engine's message and code; they are never retried and
// never defaulted to a boolean.
package rel

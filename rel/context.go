package rel

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/bitrel/engine"
	"github.com/roach88/bitrel/engine/bitgrid"
)

// Ref uniquely identifies a relation within its context. Refs are
// assigned from a monotonic counter and never reused for the lifetime
// of the context, so a stale ref can never alias a live relation.
type Ref uint64

// Context mints, tracks and destroys relations. All relations within a
// context share one engine manager, which the context exclusively owns;
// closing the context destroys every tracked relation before releasing
// the manager.
//
// Not safe for concurrent use.
type Context struct {
	id      string
	mgr     engine.Manager
	nextRef Ref
	order   []Ref // insertion order, drives deterministic teardown
	live    map[Ref]*Relation
	closed  bool
}

// ContextOption configures a Context at creation.
type ContextOption func(*contextConfig)

type contextConfig struct {
	eng engine.Engine
}

// WithEngine selects the engine backing the context's manager.
// The default is a bitgrid engine.
func WithEngine(e engine.Engine) ContextOption {
	return func(c *contextConfig) {
		c.eng = e
	}
}

// NewContext creates a context and allocates its manager.
func NewContext(opts ...ContextOption) (*Context, error) {
	cfg := &contextConfig{eng: bitgrid.New()}
	for _, opt := range opts {
		opt(cfg)
	}

	mgr, err := cfg.eng.NewManager()
	if err != nil {
		return nil, fmt.Errorf("allocate manager: %w", err)
	}

	ctx := &Context{
		id:   uuid.Must(uuid.NewV7()).String(),
		mgr:  mgr,
		live: make(map[Ref]*Relation),
	}

	slog.Debug("context created", "context_id", ctx.id)
	return ctx, nil
}

// ID returns the context's identity, used for log correlation.
func (c *Context) ID() string {
	return c.id
}

// New mints a relation of the given dimensions, optionally pre-setting
// bit coordinates. Each coordinate is a (row, col) pair.
//
// Dimensions must be both zero or both positive; anything else fails
// with an INVALID_DIMENSION error before any engine call. A failure
// while applying the initial bits destroys the fresh relation and
// returns the error.
func (c *Context) New(rows, cols int, bits ...[]int) (*Relation, error) {
	if c.closed {
		return nil, newError(ErrCodeInvalidArgument, "context is closed")
	}
	if !validDimension(rows, cols) {
		return nil, newError(ErrCodeInvalidDimension,
			"invalid dimension %dx%d: rows and cols must be both zero or both positive", rows, cols)
	}

	h, err := c.mgr.NewRelation(rows, cols)
	if err != nil {
		return nil, engineFailure(err)
	}
	r := c.track(h)

	if len(bits) > 0 {
		if err := r.SetBits(bits, true); err != nil {
			c.Destroy(r)
			return nil, err
		}
	}
	return r, nil
}

// validDimension enforces the "both zero or both positive" invariant.
func validDimension(rows, cols int) bool {
	return (rows == 0 && cols == 0) || (rows > 0 && cols > 0)
}

// track assigns the next ref to an engine handle and wraps it.
func (c *Context) track(h engine.Relation) *Relation {
	c.nextRef++
	ref := c.nextRef
	r := &Relation{
		ctx:  c,
		ref:  ref,
		h:    h,
		rows: h.Rows(),
		cols: h.Cols(),
	}
	c.live[ref] = r
	c.order = append(c.order, ref)

	slog.Debug("relation minted",
		"context_id", c.id,
		"ref", uint64(ref),
		"rows", r.rows,
		"cols", r.cols,
	)
	return r
}

// Destroy releases a relation. Passing nil, a relation from another
// context, or an already-destroyed relation is a no-op.
func (c *Context) Destroy(r *Relation) {
	if r == nil || r.ctx != c {
		return
	}
	c.DestroyRef(r.ref)
}

// DestroyRef releases the relation tracked under ref. Unknown refs are
// a no-op, so destroying twice is safe.
func (c *Context) DestroyRef(ref Ref) {
	r, ok := c.live[ref]
	if !ok {
		return
	}
	r.h.Destroy()
	r.destroyed = true
	delete(c.live, ref)
	for i, o := range c.order {
		if o == ref {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	slog.Debug("relation destroyed", "context_id", c.id, "ref", uint64(ref))
}

// Clear destroys every tracked relation, in insertion order.
func (c *Context) Clear() {
	for _, ref := range append([]Ref(nil), c.order...) {
		c.DestroyRef(ref)
	}
}

// Close destroys every tracked relation and releases the manager.
// Idempotent; the context must not be used afterwards.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.Clear()
	if err := c.mgr.Close(); err != nil {
		// Teardown never surfaces failures; log and move on.
		slog.Warn("manager close failed", "context_id", c.id, "error", err)
	}
	c.closed = true

	slog.Debug("context closed", "context_id", c.id)
}

// Count returns the number of live relations.
func (c *Context) Count() int {
	return len(c.live)
}

// Refs returns the live reference numbers in insertion order.
func (c *Context) Refs() []Ref {
	return append([]Ref(nil), c.order...)
}

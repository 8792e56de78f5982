package bitgrid

import (
	"math/rand/v2"

	"github.com/roach88/bitrel/engine"
)

// Engine mints bitgrid managers. The zero value is not usable; call New.
type Engine struct {
	seed   uint64
	seeded bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the random source seed for every manager the engine
// mints. Use in tests to make RandomFill reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// New creates a bitgrid engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewManager allocates a manager with its own random source.
func (e *Engine) NewManager() (engine.Manager, error) {
	seed := e.seed
	if !e.seeded {
		seed = rand.Uint64()
	}
	return &manager{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// manager owns the random source shared by its relations. Relations hold
// their own storage, so closing only flips the gate that rejects further
// allocation.
type manager struct {
	rng    *rand.Rand
	closed bool
}

func (m *manager) NewRelation(rows, cols int) (engine.Relation, error) {
	if m.closed {
		return nil, engine.Errorf(engine.CodeManagerClosed, "manager is closed")
	}
	return newRelation(m, rows, cols), nil
}

func (m *manager) Close() error {
	m.closed = true
	return nil
}

// check gates every relation operation on the owning manager.
func (m *manager) check() error {
	if m.closed {
		return engine.Errorf(engine.CodeManagerClosed, "manager is closed")
	}
	return nil
}

package engine

// Engine mints managers. An Engine itself holds no relation state; it is
// the factory a context asks for its exclusively-owned Manager.
type Engine interface {
	// NewManager allocates a manager. The caller owns it and must Close it.
	NewManager() (Manager, error)
}

// Manager owns the storage behind a family of relation handles. A manager
// is exclusively owned by one context for the context's lifetime.
type Manager interface {
	// NewRelation allocates an all-zero relation of the given dimensions.
	// Dimension validation happens in the caller; implementations may
	// assume rows and cols are both zero or both positive.
	NewRelation(rows, cols int) (Relation, error)

	// Close releases the manager. Closing twice is safe. Handles minted
	// by this manager must not be used afterwards.
	Close() error
}

// Relation is an engine-side handle to one stored relation. Handles are
// created through a Manager and released with Destroy exactly once.
type Relation interface {
	Rows() int
	Cols() int

	// Copy allocates a deep duplicate under the same manager.
	Copy() (Relation, error)

	// Destroy releases the handle's storage. Idempotent.
	Destroy()

	// GetBit reports the bit at (row, col).
	GetBit(row, col int) (bool, error)

	// SetBit writes the bit at (row, col).
	SetBit(value bool, row, col int) error

	// RandomFill sets each bit independently with probability prob.
	// The receiver is expected to be cleared first; prob is validated by
	// the caller and is in (0, 1].
	RandomFill(prob float64) error

	// Empty, Universal and Identity overwrite the receiver with the zero
	// relation O, the universal relation L and the diagonal relation I.
	Empty() error
	Universal() error
	Identity() error

	// Or and And write the union / intersection of a and b into the
	// receiver. All three must agree in dimension.
	Or(a, b Relation) error
	And(a, b Relation) error

	// Transpose writes a's transpose into the receiver, whose dimensions
	// are (a.Cols, a.Rows).
	Transpose(a Relation) error

	// Complement writes a's bitwise negation into the receiver.
	Complement(a Relation) error

	// Multiply writes the relational product a∘b into the receiver:
	// bit (i,k) iff some j has a(i,j) and b(j,k). Requires
	// a.Cols == b.Rows and receiver dims (a.Rows, b.Cols).
	Multiply(a, b Relation) error

	// Equals reports structural equality of the receiver and other.
	// Mismatched dimensions are a failure, not false.
	Equals(other Relation) (bool, error)

	// Includes reports whether the receiver is a subset of other
	// (every bit set in the receiver is set in other). Mismatched
	// dimensions are a failure.
	Includes(other Relation) (bool, error)

	// IsEmpty reports whether no bit is set.
	IsEmpty() (bool, error)

	// BeginFullVector overwrites the receiver with the first full row
	// vector of the given dimensions: row 0 entirely set, all other rows
	// zero. The receiver adopts (rows, cols).
	BeginFullVector(rows, cols int) error

	// NextVector shifts the set row down by one, in place. Fails with
	// CodeExhausted once the last row has been passed; the handle's
	// contents are then unspecified and the enumeration is over.
	NextVector() error

	// Render returns the grid as Rows lines of Cols glyphs, one for set
	// bits and zero for unset, joined by newlines.
	Render(one, zero byte) string
}

package rel

import (
	"github.com/roach88/bitrel/engine"
)

// Relation is an algebra-capable handle to one engine relation.
// Relations are minted by a Context and carry fixed dimensions. All
// producing operations mint their result through the owning Context,
// so results are fresh tracked handles of the correct dimension.
type Relation struct {
	ctx       *Context
	ref       Ref
	h         engine.Relation
	rows      int
	cols      int
	destroyed bool
}

// Rows returns the row count fixed at creation.
func (r *Relation) Rows() int { return r.rows }

// Cols returns the column count fixed at creation.
func (r *Relation) Cols() int { return r.cols }

// Ref returns the relation's reference number within its context.
func (r *Relation) Ref() Ref { return r.ref }

// Context returns the owning context.
func (r *Relation) Context() *Context { return r.ctx }

// Destroy releases the relation through its context. Idempotent.
func (r *Relation) Destroy() {
	if r == nil {
		return
	}
	r.ctx.Destroy(r)
}

// alive rejects use of a destroyed receiver or a closed context.
func (r *Relation) alive() error {
	if r == nil {
		return newError(ErrCodeTypeMismatch, "relation is nil")
	}
	if r.destroyed {
		return newError(ErrCodeTypeMismatch, "relation %d has been destroyed", r.ref)
	}
	if r.ctx.closed {
		return newError(ErrCodeInvalidArgument, "context is closed")
	}
	return nil
}

// operand validates a binary operand: it must be a live relation from
// the same context. Checked before any engine call.
func (r *Relation) operand(other *Relation) error {
	if err := r.alive(); err != nil {
		return err
	}
	if other == nil {
		return newError(ErrCodeTypeMismatch, "operand is nil")
	}
	if other.destroyed {
		return newError(ErrCodeTypeMismatch, "operand %d has been destroyed", other.ref)
	}
	if other.ctx != r.ctx {
		return newError(ErrCodeContextMismatch,
			"operand belongs to context %s, not %s", other.ctx.id, r.ctx.id)
	}
	return nil
}

func (r *Relation) requireSameDims(other *Relation) error {
	if r.rows != other.rows || r.cols != other.cols {
		return newError(ErrCodeInvalidDimension,
			"operand dimensions %dx%d do not match %dx%d",
			other.rows, other.cols, r.rows, r.cols)
	}
	return nil
}

// produce mints a result relation of the given dimensions, runs op to
// fill its handle, and destroys the half-built result if op fails.
func (r *Relation) produce(rows, cols int, op func(out engine.Relation) error) (*Relation, error) {
	out, err := r.ctx.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := op(out.h); err != nil {
		r.ctx.Destroy(out)
		return nil, engineFailure(err)
	}
	return out, nil
}

// Empty returns the zero relation O of the same dimension.
func (r *Relation) Empty() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.Empty()
	})
}

// Universal returns the universal relation L of the same dimension.
func (r *Relation) Universal() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.Universal()
	})
}

// Identity returns the diagonal relation I of the same dimension.
func (r *Relation) Identity() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.Identity()
	})
}

// Meet returns the intersection of r and other. Operands must agree in
// both dimensions.
func (r *Relation) Meet(other *Relation) (*Relation, error) {
	if err := r.operand(other); err != nil {
		return nil, err
	}
	if err := r.requireSameDims(other); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.And(r.h, other.h)
	})
}

// Join returns the union of r and other. Operands must agree in both
// dimensions.
func (r *Relation) Join(other *Relation) (*Relation, error) {
	if err := r.operand(other); err != nil {
		return nil, err
	}
	if err := r.requireSameDims(other); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.Or(r.h, other.h)
	})
}

// Transpose returns the converse of r; the result has dimensions
// (cols, rows).
func (r *Relation) Transpose() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	return r.produce(r.cols, r.rows, func(out engine.Relation) error {
		return out.Transpose(r.h)
	})
}

// Complement returns the bitwise negation of r.
func (r *Relation) Complement() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	return r.produce(r.rows, r.cols, func(out engine.Relation) error {
		return out.Complement(r.h)
	})
}

// Compose returns the relational product r∘other: bit (i,k) is set iff
// some j has r(i,j) and other(j,k). Requires r.Cols == other.Rows; the
// result has dimensions (r.Rows, other.Cols).
func (r *Relation) Compose(other *Relation) (*Relation, error) {
	if err := r.operand(other); err != nil {
		return nil, err
	}
	if r.cols != other.rows {
		return nil, newError(ErrCodeInvalidDimension,
			"cannot compose %dx%d with %dx%d: column count must match operand row count",
			r.rows, r.cols, other.rows, other.cols)
	}
	return r.produce(r.rows, other.cols, func(out engine.Relation) error {
		return out.Multiply(r.h, other.h)
	})
}

// compare validates operands and runs one comparison primitive.
// Engine-reported failures (including dimension mismatches) surface as
// errors, never as a default boolean.
func (r *Relation) compare(other *Relation, prim func(a, b engine.Relation) (bool, error)) (bool, error) {
	if err := r.operand(other); err != nil {
		return false, err
	}
	v, err := prim(r.h, other.h)
	if err != nil {
		return false, engineFailure(err)
	}
	return v, nil
}

// Equals reports structural equality of the two bit sets.
func (r *Relation) Equals(other *Relation) (bool, error) {
	return r.compare(other, func(a, b engine.Relation) (bool, error) {
		return a.Equals(b)
	})
}

// NotEquals is the negation of Equals.
func (r *Relation) NotEquals(other *Relation) (bool, error) {
	eq, err := r.Equals(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsSubset reports whether every bit of r is set in other.
func (r *Relation) IsSubset(other *Relation) (bool, error) {
	return r.compare(other, func(a, b engine.Relation) (bool, error) {
		return a.Includes(b)
	})
}

// IsSuperset reports whether every bit of other is set in r.
func (r *Relation) IsSuperset(other *Relation) (bool, error) {
	return r.compare(other, func(a, b engine.Relation) (bool, error) {
		return b.Includes(a)
	})
}

// IsStrictSubset reports subset and not equal. Composed from the two
// primitives; there is no direct engine call.
func (r *Relation) IsStrictSubset(other *Relation) (bool, error) {
	sub, err := r.IsSubset(other)
	if err != nil || !sub {
		return false, err
	}
	eq, err := r.Equals(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsStrictSuperset reports superset and not equal.
func (r *Relation) IsStrictSuperset(other *Relation) (bool, error) {
	sup, err := r.IsSuperset(other)
	if err != nil || !sup {
		return false, err
	}
	eq, err := r.Equals(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsEmpty reports whether no bit is set.
func (r *Relation) IsEmpty() (bool, error) {
	if err := r.alive(); err != nil {
		return false, err
	}
	v, err := r.h.IsEmpty()
	if err != nil {
		return false, engineFailure(err)
	}
	return v, nil
}

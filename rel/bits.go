package rel

import "math"

// GetBit reports the bit at (row, col). Out-of-range coordinates are an
// engine-reported failure.
func (r *Relation) GetBit(row, col int) (bool, error) {
	if err := r.alive(); err != nil {
		return false, err
	}
	v, err := r.h.GetBit(row, col)
	if err != nil {
		return false, engineFailure(err)
	}
	return v, nil
}

// SetBit writes the bit at (row, col).
func (r *Relation) SetBit(row, col int, value bool) error {
	if err := r.alive(); err != nil {
		return err
	}
	if err := r.h.SetBit(value, row, col); err != nil {
		return engineFailure(err)
	}
	return nil
}

// SetBits applies SetBit to each (row, col) pair in order. A pair that
// is not exactly two coordinates fails with INVALID_BIT_PAIR when it is
// reached; an out-of-range pair propagates the engine failure.
//
// Bits applied before a failing pair stay applied - the sequence is
// deliberately not transactional.
func (r *Relation) SetBits(pairs [][]int, value bool) error {
	if err := r.alive(); err != nil {
		return err
	}
	for _, pair := range pairs {
		if len(pair) != 2 {
			return newError(ErrCodeInvalidBitPair,
				"bit pair %v has %d coordinates, want 2", pair, len(pair))
		}
		if err := r.SetBit(pair[0], pair[1], value); err != nil {
			return err
		}
	}
	return nil
}

// Clear sets every bit to zero, overwriting the relation in place.
func (r *Relation) Clear() error {
	if err := r.alive(); err != nil {
		return err
	}
	if err := r.h.Empty(); err != nil {
		return engineFailure(err)
	}
	return nil
}

// Random clears the relation, then sets each bit independently with the
// given probability. The probability must lie in (0, 1].
func (r *Relation) Random(prob float64) error {
	if err := r.alive(); err != nil {
		return err
	}
	if math.IsNaN(prob) || prob <= 0 || prob > 1 {
		return newError(ErrCodeInvalidArgument,
			"probability %v outside (0, 1]", prob)
	}
	if err := r.Clear(); err != nil {
		return err
	}
	if err := r.h.RandomFill(prob); err != nil {
		return engineFailure(err)
	}
	return nil
}

// Copy mints a deep duplicate tracked by the same context.
func (r *Relation) Copy() (*Relation, error) {
	if err := r.alive(); err != nil {
		return nil, err
	}
	h, err := r.h.Copy()
	if err != nil {
		return nil, engineFailure(err)
	}
	return r.ctx.track(h), nil
}

package rel

// Vector overwrites the relation with the index-th full row vector of
// its dimension: the canonical first vector (row 0 entirely set),
// advanced index times.
func (r *Relation) Vector(index int) error {
	if err := r.alive(); err != nil {
		return err
	}
	if index < 0 {
		return newError(ErrCodeInvalidArgument, "vector index %d is negative", index)
	}
	if err := r.h.BeginFullVector(r.rows, r.cols); err != nil {
		return engineFailure(err)
	}
	return r.VectorNext(index)
}

// VectorNext advances the vector in place, increment times. The first
// failing engine call (typically an exhausted enumeration) surfaces
// immediately; callers must treat it as terminal for this enumeration,
// since the relation's contents are then unspecified.
func (r *Relation) VectorNext(increment int) error {
	if err := r.alive(); err != nil {
		return err
	}
	if increment < 0 {
		return newError(ErrCodeInvalidArgument, "vector increment %d is negative", increment)
	}
	for i := 0; i < increment; i++ {
		if err := r.h.NextVector(); err != nil {
			return engineFailure(err)
		}
	}
	return nil
}

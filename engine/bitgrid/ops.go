package bitgrid

import (
	"github.com/roach88/bitrel/engine"
)

// asGrid rejects handles minted by a different engine implementation.
func asGrid(h engine.Relation) (*relation, error) {
	g, ok := h.(*relation)
	if !ok {
		return nil, engine.Errorf(engine.CodeForeignHandle,
			"relation handle was not minted by a bitgrid manager")
	}
	return g, nil
}

func (r *relation) sameDims(o *relation) error {
	if r.rows != o.rows || r.cols != o.cols {
		return engine.Errorf(engine.CodeDimensionMismatch,
			"dimensions %dx%d and %dx%d differ", r.rows, r.cols, o.rows, o.cols)
	}
	return nil
}

func (r *relation) Empty() error {
	if err := r.m.check(); err != nil {
		return err
	}
	clear(r.words)
	return nil
}

func (r *relation) Universal() error {
	if err := r.m.check(); err != nil {
		return err
	}
	for i := range r.words {
		r.words[i] = ^uint64(0)
	}
	r.maskTails()
	return nil
}

func (r *relation) Identity() error {
	if err := r.m.check(); err != nil {
		return err
	}
	clear(r.words)
	n := min(r.rows, r.cols)
	wpr := r.wordsPerRow()
	for i := 0; i < n; i++ {
		r.words[i*wpr+i/wordBits] |= uint64(1) << (i % wordBits)
	}
	return nil
}

func (r *relation) Or(a, b engine.Relation) error {
	return r.combine(a, b, func(x, y uint64) uint64 { return x | y })
}

func (r *relation) And(a, b engine.Relation) error {
	return r.combine(a, b, func(x, y uint64) uint64 { return x & y })
}

func (r *relation) combine(a, b engine.Relation, op func(x, y uint64) uint64) error {
	if err := r.m.check(); err != nil {
		return err
	}
	ga, err := asGrid(a)
	if err != nil {
		return err
	}
	gb, err := asGrid(b)
	if err != nil {
		return err
	}
	if err := r.sameDims(ga); err != nil {
		return err
	}
	if err := r.sameDims(gb); err != nil {
		return err
	}
	for i := range r.words {
		r.words[i] = op(ga.words[i], gb.words[i])
	}
	return nil
}

func (r *relation) Transpose(a engine.Relation) error {
	if err := r.m.check(); err != nil {
		return err
	}
	ga, err := asGrid(a)
	if err != nil {
		return err
	}
	if r.rows != ga.cols || r.cols != ga.rows {
		return engine.Errorf(engine.CodeDimensionMismatch,
			"transpose of %dx%d needs a %dx%d result, got %dx%d",
			ga.rows, ga.cols, ga.cols, ga.rows, r.rows, r.cols)
	}
	clear(r.words)
	srcWpr := ga.wordsPerRow()
	dstWpr := r.wordsPerRow()
	for row := 0; row < ga.rows; row++ {
		for col := 0; col < ga.cols; col++ {
			if ga.words[row*srcWpr+col/wordBits]&(uint64(1)<<(col%wordBits)) != 0 {
				r.words[col*dstWpr+row/wordBits] |= uint64(1) << (row % wordBits)
			}
		}
	}
	return nil
}

func (r *relation) Complement(a engine.Relation) error {
	if err := r.m.check(); err != nil {
		return err
	}
	ga, err := asGrid(a)
	if err != nil {
		return err
	}
	if err := r.sameDims(ga); err != nil {
		return err
	}
	for i := range r.words {
		r.words[i] = ^ga.words[i]
	}
	r.maskTails()
	return nil
}

func (r *relation) Multiply(a, b engine.Relation) error {
	if err := r.m.check(); err != nil {
		return err
	}
	ga, err := asGrid(a)
	if err != nil {
		return err
	}
	gb, err := asGrid(b)
	if err != nil {
		return err
	}
	if ga.cols != gb.rows {
		return engine.Errorf(engine.CodeDimensionMismatch,
			"cannot compose %dx%d with %dx%d", ga.rows, ga.cols, gb.rows, gb.cols)
	}
	if r.rows != ga.rows || r.cols != gb.cols {
		return engine.Errorf(engine.CodeDimensionMismatch,
			"composing %dx%d with %dx%d needs a %dx%d result, got %dx%d",
			ga.rows, ga.cols, gb.rows, gb.cols, ga.rows, gb.cols, r.rows, r.cols)
	}
	clear(r.words)
	aWpr := ga.wordsPerRow()
	bWpr := gb.wordsPerRow()
	for i := 0; i < ga.rows; i++ {
		// OR row j of b into result row i for every j with a(i,j).
		for j := 0; j < ga.cols; j++ {
			if ga.words[i*aWpr+j/wordBits]&(uint64(1)<<(j%wordBits)) == 0 {
				continue
			}
			dst := r.words[i*bWpr : (i+1)*bWpr]
			src := gb.words[j*bWpr : (j+1)*bWpr]
			for k := range dst {
				dst[k] |= src[k]
			}
		}
	}
	return nil
}

func (r *relation) Equals(other engine.Relation) (bool, error) {
	if err := r.m.check(); err != nil {
		return false, err
	}
	o, err := asGrid(other)
	if err != nil {
		return false, err
	}
	if err := r.sameDims(o); err != nil {
		return false, err
	}
	for i := range r.words {
		if r.words[i] != o.words[i] {
			return false, nil
		}
	}
	return true, nil
}

func (r *relation) Includes(other engine.Relation) (bool, error) {
	if err := r.m.check(); err != nil {
		return false, err
	}
	o, err := asGrid(other)
	if err != nil {
		return false, err
	}
	if err := r.sameDims(o); err != nil {
		return false, err
	}
	for i := range r.words {
		if r.words[i]&^o.words[i] != 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *relation) IsEmpty() (bool, error) {
	if err := r.m.check(); err != nil {
		return false, err
	}
	for _, w := range r.words {
		if w != 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *relation) BeginFullVector(rows, cols int) error {
	if err := r.m.check(); err != nil {
		return err
	}
	r.rows = rows
	r.cols = cols
	r.words = make([]uint64, rows*r.wordsPerRow())
	if rows == 0 || cols == 0 {
		return engine.Errorf(engine.CodeExhausted,
			"no vectors over an empty %dx%d dimension", rows, cols)
	}
	wpr := r.wordsPerRow()
	for k := 0; k < wpr; k++ {
		r.words[k] = ^uint64(0)
	}
	r.maskTails()
	return nil
}

func (r *relation) NextVector() error {
	if err := r.m.check(); err != nil {
		return err
	}
	wpr := r.wordsPerRow()
	cur := -1
	for row := 0; row < r.rows; row++ {
		for k := 0; k < wpr; k++ {
			if r.words[row*wpr+k] != 0 {
				cur = row
				break
			}
		}
		if cur >= 0 {
			break
		}
	}
	if cur < 0 {
		return engine.Errorf(engine.CodeExhausted, "relation holds no vector row")
	}
	if cur == r.rows-1 {
		clear(r.words)
		return engine.Errorf(engine.CodeExhausted, "vector enumeration exhausted")
	}
	clear(r.words[cur*wpr : (cur+1)*wpr])
	for k := 0; k < wpr; k++ {
		r.words[(cur+1)*wpr+k] = ^uint64(0)
	}
	r.maskTails()
	return nil
}

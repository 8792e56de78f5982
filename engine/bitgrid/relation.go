package bitgrid

import (
	"strings"

	"github.com/roach88/bitrel/engine"
)

const wordBits = 64

// relation is a dense row-major bitset. Each row occupies wordsPerRow
// words; bits past the last column of a row stay zero (see package doc).
type relation struct {
	m     *manager
	rows  int
	cols  int
	words []uint64
}

func newRelation(m *manager, rows, cols int) *relation {
	r := &relation{m: m, rows: rows, cols: cols}
	r.words = make([]uint64, rows*r.wordsPerRow())
	return r
}

func (r *relation) wordsPerRow() int {
	return (r.cols + wordBits - 1) / wordBits
}

// tailMask is the mask for the final word of a row; zero when the row is
// word-aligned or the relation is empty.
func (r *relation) tailMask() uint64 {
	rem := r.cols % wordBits
	if rem == 0 {
		return 0
	}
	return (uint64(1) << rem) - 1
}

// maskTails zeroes the unused bits in every row's final word, restoring
// the representation invariant after a whole-word write.
func (r *relation) maskTails() {
	mask := r.tailMask()
	if mask == 0 {
		return
	}
	wpr := r.wordsPerRow()
	for row := 0; row < r.rows; row++ {
		r.words[(row+1)*wpr-1] &= mask
	}
}

func (r *relation) Rows() int { return r.rows }
func (r *relation) Cols() int { return r.cols }

func (r *relation) Copy() (engine.Relation, error) {
	if err := r.m.check(); err != nil {
		return nil, err
	}
	dup := newRelation(r.m, r.rows, r.cols)
	copy(dup.words, r.words)
	return dup, nil
}

func (r *relation) Destroy() {
	r.words = nil
}

func (r *relation) bounds(row, col int) error {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return engine.Errorf(engine.CodeOutOfRange,
			"bit (%d, %d) outside %dx%d relation", row, col, r.rows, r.cols)
	}
	return nil
}

func (r *relation) GetBit(row, col int) (bool, error) {
	if err := r.m.check(); err != nil {
		return false, err
	}
	if err := r.bounds(row, col); err != nil {
		return false, err
	}
	word := r.words[row*r.wordsPerRow()+col/wordBits]
	return word&(uint64(1)<<(col%wordBits)) != 0, nil
}

func (r *relation) SetBit(value bool, row, col int) error {
	if err := r.m.check(); err != nil {
		return err
	}
	if err := r.bounds(row, col); err != nil {
		return err
	}
	idx := row*r.wordsPerRow() + col/wordBits
	bit := uint64(1) << (col % wordBits)
	if value {
		r.words[idx] |= bit
	} else {
		r.words[idx] &^= bit
	}
	return nil
}

func (r *relation) RandomFill(prob float64) error {
	if err := r.m.check(); err != nil {
		return err
	}
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			if r.m.rng.Float64() < prob {
				idx := row*r.wordsPerRow() + col/wordBits
				r.words[idx] |= uint64(1) << (col % wordBits)
			}
		}
	}
	return nil
}

func (r *relation) Render(one, zero byte) string {
	var b strings.Builder
	b.Grow(r.rows * (r.cols + 1))
	for row := 0; row < r.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < r.cols; col++ {
			word := r.words[row*r.wordsPerRow()+col/wordBits]
			if word&(uint64(1)<<(col%wordBits)) != 0 {
				b.WriteByte(one)
			} else {
				b.WriteByte(zero)
			}
		}
	}
	return b.String()
}

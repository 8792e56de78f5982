package rel

// Default glyphs for rendered grids.
const (
	SetGlyph   = 'X'
	UnsetGlyph = '.'
)

// String renders the relation as Rows lines of Cols glyphs, 'X' for set
// bits and '.' for unset. A destroyed relation renders as a marker
// rather than failing, so relations stay safe to log.
func (r *Relation) String() string {
	s, err := r.Render(SetGlyph, UnsetGlyph)
	if err != nil {
		return "<destroyed relation>"
	}
	return s
}

// Render renders the grid with the given glyphs for set and unset bits.
func (r *Relation) Render(one, zero byte) (string, error) {
	if err := r.alive(); err != nil {
		return "", err
	}
	return r.h.Render(one, zero), nil
}

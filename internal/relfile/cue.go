package relfile

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// loadCUE parses a workspace from CUE source using the CUE Go API.
func loadCUE(path string, data []byte) (*Workspace, error) {
	cctx := cuecontext.New()
	v := cctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	relsVal := v.LookupPath(cue.ParsePath("relations"))
	if !relsVal.Exists() {
		return nil, &LoadError{
			Field:   "relations",
			Message: "relations block is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := relsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var defs []Def
	for iter.Next() {
		def, err := parseDef(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return finish(defs), nil
}

// parseDef extracts one relation definition from a CUE struct.
func parseDef(name string, v cue.Value) (Def, error) {
	def := Def{Name: name}

	rows, err := requireInt(v, "rows")
	if err != nil {
		return def, err
	}
	def.Rows = rows

	cols, err := requireInt(v, "cols")
	if err != nil {
		return def, err
	}
	def.Cols = cols

	// bits is optional
	bitsVal := v.LookupPath(cue.ParsePath("bits"))
	if bitsVal.Exists() {
		bitsIter, err := bitsVal.List()
		if err != nil {
			return def, formatCUEError(err)
		}
		for bitsIter.Next() {
			pair, err := parsePair(bitsIter.Value())
			if err != nil {
				return def, err
			}
			def.Bits = append(def.Bits, pair)
		}
	}

	return def, nil
}

// parsePair decodes one [row, col] list. Arity is preserved as written
// so malformed pairs surface through the rel layer's bit-pair check.
func parsePair(v cue.Value) ([]int, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var pair []int
	for iter.Next() {
		n, err := iter.Value().Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		pair = append(pair, int(n))
	}
	return pair, nil
}

func requireInt(v cue.Value, field string) (int, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return 0, &LoadError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	n, err := fieldVal.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return int(n), nil
}

// LoadError is a workspace parse error with source position.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}

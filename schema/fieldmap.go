package schema

import (
	"fmt"
	"sort"
)

// FieldMap is an immutable source-to-target rename table used during field
// mapping. Only source fields listed here survive mapping; everything else is
// dropped. The zero value is an empty map that maps nothing.
type FieldMap struct {
	targets map[string]string
}

// NewFieldMap builds a field map from source-target pairs. Source and target
// names must be non-empty, and no two sources may share a target: a colliding
// rename would silently overwrite one field with another.
func NewFieldMap(pairs map[string]string) (FieldMap, error) {
	targets := make(map[string]string, len(pairs))
	used := make(map[string]string, len(pairs))
	for src, tgt := range pairs {
		if src == "" {
			return FieldMap{}, ErrEmptySourceField
		}
		if tgt == "" {
			return FieldMap{}, fmt.Errorf("%w: source %q", ErrEmptyTargetField, src)
		}
		if prev, ok := used[tgt]; ok {
			// Map iteration order is random; report both sources in a
			// stable order so the error message is deterministic.
			a, b := prev, src
			if a > b {
				a, b = b, a
			}
			return FieldMap{}, fmt.Errorf("%w: %q claimed by both %q and %q", ErrDuplicateTarget, tgt, a, b)
		}
		used[tgt] = src
		targets[src] = tgt
	}
	return FieldMap{targets: targets}, nil
}

// MustFieldMap is like NewFieldMap but panics on error.
func MustFieldMap(pairs map[string]string) FieldMap {
	fm, err := NewFieldMap(pairs)
	if err != nil {
		panic(fmt.Sprintf("schema: invalid field map: %v", err))
	}
	return fm
}

// Target returns the output name for a source field.
func (fm FieldMap) Target(src string) (string, bool) {
	tgt, ok := fm.targets[src]
	return tgt, ok
}

// Sources returns the mapped source fields in sorted order.
func (fm FieldMap) Sources() []string {
	out := make([]string, 0, len(fm.targets))
	for src := range fm.targets {
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of mapped fields.
func (fm FieldMap) Len() int {
	return len(fm.targets)
}

package recordkit

import "reflect"

// Record is a single data record keyed by field name. Values are whatever the
// decode layer produced: scalars, json.Number, nested map[string]any, or
// slices. Packages in this module treat records as immutable and return fresh
// maps instead of mutating their input.
type Record map[string]any

// Clone returns a deep copy of the record. Nested maps and slices are copied
// recursively; scalar values are carried as-is.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if m, ok := AsMap(v); ok {
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[k] = cloneValue(mv)
		}
		return out
	}
	if l, ok := AsList(v); ok {
		out := make([]any, len(l))
		for i, lv := range l {
			out[i] = cloneValue(lv)
		}
		return out
	}
	return v
}

// Equal reports whether two records are structurally equal: the same key set
// with structurally equal values. Key order never matters because Go maps are
// unordered. Numeric values compare by value across representations, so
// {"n": 1} equals {"n": 1.0} regardless of how each record was decoded.
func Equal(a, b Record) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := NumberOf(a); ok {
		bn, ok := NumberOf(b)
		return ok && an.Equal(bn)
	}
	switch at := a.(type) {
	case string:
		bt, ok := b.(string)
		return ok && at == bt
	case bool:
		bt, ok := b.(bool)
		return ok && at == bt
	}
	if am, ok := AsMap(a); ok {
		bm, ok := AsMap(b)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !equalValue(av, bv) {
				return false
			}
		}
		return true
	}
	if al, ok := AsList(a); ok {
		bl, ok := AsList(b)
		if !ok || len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !equalValue(al[i], bl[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// AsMap normalizes string-keyed map values to map[string]any. It accepts
// map[string]any, Record, and any map type with string keys via reflection.
func AsMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Record:
		return map[string]any(t), true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// AsList normalizes sequence values to []any. It accepts []any directly and
// any other slice or array type via reflection. Strings are not sequences.
func AsList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

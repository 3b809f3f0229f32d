package recordkit

import "fmt"

// Kind tags the shape of a record value. The set is closed: every value a
// decode layer can produce classifies into exactly one kind, and type
// constraints reference kinds instead of Go types.
type Kind uint8

const (
	// KindInvalid is the zero value. It classifies nothing and matches
	// nothing; rule sets use it to mean "no type constraint".
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindString
	KindInt
	KindFloat
	// KindNumber matches both KindInt and KindFloat values. KindOf never
	// returns it; it exists for constraints that accept any numeric.
	KindNumber
	KindList
	KindMap
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindString:  "string",
	KindInt:     "int",
	KindFloat:   "float",
	KindNumber:  "number",
	KindList:    "list",
	KindMap:     "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a kind by its canonical name, as used in schema files.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != KindInvalid && name == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindOf classifies a value. Numerics classify as KindInt or KindFloat based
// on their representation: native integer types and whole json.Number values
// are ints, native floats and fractional json.Number values are floats. A
// plain float64 is always KindFloat even when it holds a whole value, which
// is why int-constrained pipelines should decode with json.Number enabled.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	if n, ok := NumberOf(v); ok {
		if n.Integer() {
			return KindInt
		}
		return KindFloat
	}
	switch v.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	}
	if _, ok := AsMap(v); ok {
		return KindMap
	}
	if _, ok := AsList(v); ok {
		return KindList
	}
	return KindInvalid
}

// Matches reports whether a value classifies as this kind. KindNumber accepts
// both int and float values; KindInvalid accepts nothing.
func (k Kind) Matches(v any) bool {
	got := KindOf(v)
	if got == KindInvalid {
		return false
	}
	if k == KindNumber {
		return got == KindInt || got == KindFloat
	}
	return got == k
}

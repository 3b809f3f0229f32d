package recordkit

// IsEmptyValue reports whether a value counts as empty for required-value
// checks: nil, the empty string, false, and empty lists or maps are empty.
// Numeric values never are, so a legitimate zero survives validation while a
// blank string does not.
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := NumberOf(v); ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case bool:
		return !t
	}
	if m, ok := AsMap(v); ok {
		return len(m) == 0
	}
	if l, ok := AsList(v); ok {
		return len(l) == 0
	}
	return false
}

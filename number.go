package recordkit

import (
	"encoding/json"
	"math"
	"strconv"
)

type numClass uint8

const (
	numInt numClass = iota
	numUint
	numFloat
)

// Number is a numeric value normalized for cross-representation comparison.
// Ints of any width, uints, floats, and json.Number values normalize into the
// same space, so 1, uint8(1), 1.0, and json.Number("1") compare equal and
// render identically. Comparison is exact: large integers never pass through
// a lossy float64 conversion.
type Number struct {
	class numClass
	i     int64
	u     uint64
	f     float64
}

// NumberOf normalizes v into a Number. The second return value is false when
// v is not numeric; bool is deliberately not numeric here.
func NumberOf(v any) (Number, bool) {
	switch t := v.(type) {
	case int:
		return intNumber(int64(t)), true
	case int8:
		return intNumber(int64(t)), true
	case int16:
		return intNumber(int64(t)), true
	case int32:
		return intNumber(int64(t)), true
	case int64:
		return intNumber(t), true
	case uint:
		return uintNumber(uint64(t)), true
	case uint8:
		return intNumber(int64(t)), true
	case uint16:
		return intNumber(int64(t)), true
	case uint32:
		return intNumber(int64(t)), true
	case uint64:
		return uintNumber(t), true
	case float32:
		return floatNumber(float64(t)), true
	case float64:
		return floatNumber(t), true
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return intNumber(i), true
		}
		if u, err := strconv.ParseUint(string(t), 10, 64); err == nil {
			return uintNumber(u), true
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return floatNumber(f), true
		}
		return Number{}, false
	}
	return Number{}, false
}

func intNumber(i int64) Number {
	return Number{class: numInt, i: i}
}

func uintNumber(u uint64) Number {
	if u <= math.MaxInt64 {
		return intNumber(int64(u))
	}
	return Number{class: numUint, u: u}
}

func floatNumber(f float64) Number {
	return Number{class: numFloat, f: f}
}

// Integer reports whether the value came from an integer representation.
// A float64 holding a whole value is still not an integer, matching the
// int/float split JSON decoding produces.
func (n Number) Integer() bool {
	return n.class != numFloat
}

// Equal reports whether two numbers hold the same value. Integer-float
// comparison is exact, so 9007199254740993 does not equal 9007199254740992.0.
func (n Number) Equal(o Number) bool {
	switch {
	case n.class == numFloat && o.class == numFloat:
		return n.f == o.f
	case n.class == numFloat:
		return floatEqualsInteger(n.f, o)
	case o.class == numFloat:
		return floatEqualsInteger(o.f, n)
	case n.class != o.class:
		// numUint only holds values above MaxInt64, out of any int64's reach.
		return false
	case n.class == numInt:
		return n.i == o.i
	default:
		return n.u == o.u
	}
}

func floatEqualsInteger(f float64, n Number) bool {
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return false
	}
	if n.class == numInt {
		return f >= -(1<<63) && f < 1<<63 && int64(f) == n.i
	}
	return f >= 1<<63 && f < 1<<64 && uint64(f) == n.u
}

// String renders the canonical decimal form. Whole-valued floats render
// without a fractional part so 1 and 1.0 produce the same text; everything
// else uses the shortest round-trippable float formatting.
func (n Number) String() string {
	switch n.class {
	case numInt:
		return strconv.FormatInt(n.i, 10)
	case numUint:
		return strconv.FormatUint(n.u, 10)
	default:
		if math.Trunc(n.f) == n.f && !math.IsInf(n.f, 0) {
			if n.f >= -(1<<63) && n.f < 1<<63 {
				return strconv.FormatInt(int64(n.f), 10)
			}
			if n.f >= 1<<63 && n.f < 1<<64 {
				return strconv.FormatUint(uint64(n.f), 10)
			}
		}
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

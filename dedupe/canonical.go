package dedupe

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrymomot/recordkit"
)

// Canonical reduces a record to a deterministic byte form: map keys are
// sorted, list order is preserved, and every scalar is tagged by kind with
// numerics normalized, so equivalent values encode identically regardless of
// representation or key order.
func Canonical(rec recordkit.Record) []byte {
	var buf bytes.Buffer
	encodeMap(&buf, map[string]any(rec))
	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v any) {
	if v == nil {
		buf.WriteString("z;")
		return
	}
	if n, ok := recordkit.NumberOf(v); ok {
		buf.WriteString("n:")
		buf.WriteString(n.String())
		buf.WriteByte(';')
		return
	}
	switch t := v.(type) {
	case string:
		encodeString(buf, t)
		return
	case bool:
		if t {
			buf.WriteString("b:1;")
		} else {
			buf.WriteString("b:0;")
		}
		return
	}
	if m, ok := recordkit.AsMap(v); ok {
		encodeMap(buf, m)
		return
	}
	if l, ok := recordkit.AsList(v); ok {
		buf.WriteString("l:")
		buf.WriteString(strconv.Itoa(len(l)))
		buf.WriteByte('[')
		for _, item := range l {
			encodeValue(buf, item)
		}
		buf.WriteByte(']')
		return
	}
	// Values outside the record model fall back to their Go representation;
	// identical values still encode identically.
	fmt.Fprintf(buf, "x:%T:%#v;", v, v)
}

func encodeMap(buf *bytes.Buffer, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteString("m:")
	buf.WriteString(strconv.Itoa(len(keys)))
	buf.WriteByte('{')
	for _, k := range keys {
		encodeString(buf, k)
		encodeValue(buf, m[k])
	}
	buf.WriteByte('}')
}

// encodeString is length-prefixed so string content can never be confused
// with encoding structure.
func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteString("s:")
	buf.WriteString(strconv.Itoa(len(s)))
	buf.WriteByte(':')
	buf.WriteString(s)
	buf.WriteByte(';')
}

package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordkit"
)

// Decode reads a top-level JSON array of objects from r. Trailing data after
// the array is rejected.
func Decode(r io.Reader) ([]recordkit.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Join(ErrInvalidSource, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after top-level array", ErrInvalidSource)
	}

	return Records(raw)
}

// DecodeNDJSON reads newline-delimited JSON from r, one object per line.
// Empty input yields an empty batch.
func DecodeNDJSON(r io.Reader) ([]recordkit.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []recordkit.Record
	for i := 0; ; i++ {
		var raw any
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Join(ErrInvalidSource, err)
		}

		m, ok := recordkit.AsMap(raw)
		if !ok {
			return nil, fmt.Errorf("%w (record %d, %T)", ErrNotObject, i+1, raw)
		}
		records = append(records, recordkit.Record(m))
	}

	return records, nil
}

// Records normalizes already-decoded input into a record slice. Accepted
// shapes are []recordkit.Record, []map[string]any, and any sequence whose
// elements are all string-keyed maps.
func Records(input any) ([]recordkit.Record, error) {
	switch in := input.(type) {
	case []recordkit.Record:
		return in, nil
	case []map[string]any:
		out := make([]recordkit.Record, len(in))
		for i, m := range in {
			out[i] = recordkit.Record(m)
		}
		return out, nil
	case []any:
		out := make([]recordkit.Record, len(in))
		for i, v := range in {
			m, ok := recordkit.AsMap(v)
			if !ok {
				return nil, fmt.Errorf("%w (index %d, %T)", ErrNotObject, i, v)
			}
			out[i] = recordkit.Record(m)
		}
		return out, nil
	}

	// Other slice kinds ([]CustomMap and the like) route through the
	// generic sequence check.
	if list, ok := recordkit.AsList(input); ok {
		return Records(list)
	}

	return nil, fmt.Errorf("%w (got %T)", ErrNotArray, input)
}

package validate

import (
	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/schema"
)

// Map renames a record's fields through the given field map. Fields absent
// from the map are dropped; mapped values carry over untouched. The result
// is always a fresh record, so the input is never mutated, and an empty map
// yields an empty record.
func Map(rec recordkit.Record, fm schema.FieldMap) recordkit.Record {
	out := make(recordkit.Record, fm.Len())
	for key, value := range rec {
		if target, ok := fm.Target(key); ok {
			out[target] = value
		}
	}
	return out
}

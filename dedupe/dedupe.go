package dedupe

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/dmitrymomot/recordkit"
)

// Fingerprint returns a compact 64-bit identity for a record, computed over
// its canonical form. Structurally equal records always share a fingerprint;
// unequal records may collide, which is why Partition confirms equality on
// canonical bytes before declaring a duplicate.
func Fingerprint(rec recordkit.Record) uint64 {
	return xxhash.Sum64(Canonical(rec))
}

// Partition splits a batch into unique records and duplicates. The first
// occurrence of each structural value counts as unique; every later
// occurrence lands in duplicates. Both outputs preserve input order.
func Partition(records []recordkit.Record) (unique, duplicates []recordkit.Record) {
	seen := make(map[uint64][][]byte, len(records))
	for _, rec := range records {
		canon := Canonical(rec)
		sum := xxhash.Sum64(canon)

		bucket := seen[sum]
		dup := false
		for _, prev := range bucket {
			if bytes.Equal(prev, canon) {
				dup = true
				break
			}
		}
		if dup {
			duplicates = append(duplicates, rec)
			continue
		}
		seen[sum] = append(bucket, canon)
		unique = append(unique, rec)
	}
	return unique, duplicates
}

// Detect partitions the batch and reports duplicates as an error. The unique
// records are returned in either case; when repeats exist the error is a
// *DuplicatesError carrying them, so callers decide whether that aborts
// their run or merely trims it.
func Detect(records []recordkit.Record) ([]recordkit.Record, error) {
	unique, duplicates := Partition(records)
	if len(duplicates) > 0 {
		return unique, &DuplicatesError{Duplicates: duplicates}
	}
	return unique, nil
}

// Package dedupe finds structurally equal records in a batch. Two records
// are duplicates when they hold the same fields with the same values; key
// order never matters, and numerics compare by value, so {"n": 1} and
// {"n": 1.0} collide no matter how each was decoded.
//
// # Usage
//
// Partition splits a batch into first occurrences and later repeats:
//
//	unique, duplicates := dedupe.Partition(records)
//
// Detect does the same but reports repeats as an error, for callers that
// treat duplicates as a failure:
//
//	unique, err := dedupe.Detect(records)
//	var dups *dedupe.DuplicatesError
//	if errors.As(err, &dups) {
//		log.Printf("%d duplicate records", len(dups.Duplicates))
//	}
//
// # Performance Considerations
//
// Every record is reduced to a deterministic canonical byte form (sorted
// keys, normalized numbers) and bucketed by its 64-bit xxhash fingerprint.
// Equality within a bucket is confirmed by comparing canonical bytes, so a
// hash collision can never mark two distinct records as duplicates. The
// whole pass is O(n) hashes with canonical forms retained per bucket.
package dedupe

// Package source decodes raw input into records with numeric fidelity.
//
// JSON is the native input shape. Both decoders enable json.Number so
// integer and float values stay distinguishable downstream; plain float64
// decoding would erase the difference and break int type constraints.
//
// # Usage
//
//	records, err := source.Decode(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Records normalizes input that was decoded elsewhere (a []any from an API
// payload, a []map[string]any from a driver) into the same record slice
// shape. All failures wrap ErrInvalidSource.
package source

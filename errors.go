package recordkit

import "errors"

// ErrUnknownKind is returned by ParseKind for names outside the closed kind
// set.
var ErrUnknownKind = errors.New("unknown value kind")

package schema

import "errors"

var (
	ErrEmptyFieldName   = errors.New("field name cannot be empty")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrInvalidMaxLength = errors.New("max length must be positive")
	ErrEmptySourceField = errors.New("field map source cannot be empty")
	ErrEmptyTargetField = errors.New("field map target cannot be empty")
	ErrDuplicateTarget  = errors.New("field map target already in use")
	ErrUnknownPredicate = errors.New("unknown predicate")
	ErrInvalidSchema    = errors.New("invalid schema document")
)

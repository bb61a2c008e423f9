package service

import "errors"

// Error taxonomy. Reads that miss are not errors (they return a nil
// payload inside a success envelope); these sentinels cover mutation
// targets that do not exist, invalid input, and business-rule
// violations. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

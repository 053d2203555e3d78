package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a storage write failure, e.g. a uniqueness violation.
// The low-level cause is wrapped but never exposed to API callers.
var ErrConflict = errors.New("error saving data, try again later")

// ErrEmptyResult indicates an operation was requested over zero underlying
// records where the contract treats that as an error rather than a zero value.
var ErrEmptyResult = errors.New("no records available")

package errs

import "errors"

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrObjectNotFound        = errors.New("object not found")
	ErrFunctionNotConfigured = errors.New("consistency function is not configured")
)

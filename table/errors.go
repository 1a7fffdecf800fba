package table

import "errors"

var (
	// ErrMalformedRow is returned when a row does not fit the table shape
	ErrMalformedRow = errors.New("malformed row")
	// ErrMissingHeader is returned when delimited content has no header row where one is expected
	ErrMissingHeader = errors.New("missing header row")
)

package service

import "errors"

// User-input errors. Controllers map these to 400s with a visible warning;
// they never indicate a server fault.
var (
	ErrEmptyQuery            = errors.New("query must not be empty")
	ErrResultIndexOutOfRange = errors.New("result index out of range")
)

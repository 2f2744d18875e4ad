package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")
	// ErrStateConflict is returned when a commit targets a loan that is no
	// longer Available (e.g. a concurrent attempt already traded it).
	ErrStateConflict = errors.New("loan is not available for trading")
)

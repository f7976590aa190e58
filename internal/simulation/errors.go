package simulation

import "errors"

var (
	// ErrCatalogLookup indicates the NEO catalog lookup did not succeed.
	// The simulation request fails as a whole; no partial result is
	// produced and no retry is attempted here.
	ErrCatalogLookup = errors.New("catalog lookup failed")

	// ErrInvalidInput indicates a request field could not be coerced to a
	// number.
	ErrInvalidInput = errors.New("invalid input")
)

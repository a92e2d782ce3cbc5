package biasedmap

import "errors"

var (
	// ErrInvalidParameter is returned by a constructor given a
	// non-positive max_level or initial_capacity.
	ErrInvalidParameter = errors.New("biasedmap: invalid parameter")

	// ErrNotFound names the missing-key condition. No engine in this module
	// returns it: Lookup, Erase and Reweight all report a missing key
	// through their bool results instead.
	ErrNotFound = errors.New("biasedmap: key not found")
)

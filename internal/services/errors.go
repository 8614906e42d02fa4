package services

import "errors"

// Expected, recoverable failure conditions. Callers test these with
// errors.Is and decide whether to surface or suppress them.
var (
	ErrInsufficientData  = errors.New("insufficient_data")
	ErrNotTrending       = errors.New("not_trending")
	ErrAlreadyBreached   = errors.New("already_breached")
	ErrMissingVersion    = errors.New("missing_version")
	ErrMissingEnvelopeID = errors.New("missing_envelope_id")
)

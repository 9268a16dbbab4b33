package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Infrastructure layers return
// these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: resource does not exist at the backing service
// - ErrUnavailable: broker or resource temporarily unavailable
//
// For validation errors (bad input, violated invariants), use
// pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)

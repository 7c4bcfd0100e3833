package token

import "encore.dev/beta/errs"

// Token failures are the only errors this subsystem lets escape to the
// endpoint layer; everything downstream of a valid token is total.
//
// Format and integrity failures deliberately share one client-facing
// message so the response does not leak which check failed; internal logs
// still distinguish them. Expiry is its own condition because a client can
// act on it (resubmit the flow).
var (
	// ErrInvalidFormat marks input that does not even look like a request
	// token: wrong prefix or wrong segment shape. Rejected before any
	// cryptographic work.
	ErrInvalidFormat = &errs.Error{Code: errs.InvalidArgument, Message: "invalid request token"}

	// ErrInvalidToken marks a well-formed token that fails signature
	// verification or claim extraction.
	ErrInvalidToken = &errs.Error{Code: errs.InvalidArgument, Message: "invalid request token"}

	// ErrExpired marks a correctly signed token past its lifetime.
	ErrExpired = &errs.Error{Code: errs.InvalidArgument, Message: "request token has expired, please resubmit the request"}
)

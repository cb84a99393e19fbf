package http

import "errors"

// Sentinel errors used by the access middleware when extracting credentials
// from the request. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the session guard when the request
	// carries no session cookie at all.
	ErrNoSessionCookie = errors.New("missing session cookie")

	// ErrEmptyAPIKeyHeader is returned by the API key guard when the
	// incoming request does not include an "x-api-key" header.
	ErrEmptyAPIKeyHeader = errors.New("empty `x-api-key` header")
)

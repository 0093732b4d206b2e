package classifier

import "errors"

var (
	// ErrUpstreamUnavailable means the classification capability could not be
	// reached, including timeouts.
	ErrUpstreamUnavailable = errors.New("classification service unavailable")

	// ErrRateLimited means the upstream rejected the call with a rate-limit
	// status; the caller may retry later.
	ErrRateLimited = errors.New("classification rate limit exceeded")

	// ErrQuotaExhausted means the upstream rejected the call for billing or
	// quota reasons.
	ErrQuotaExhausted = errors.New("classification quota exhausted")

	// ErrUnparseable means the upstream replied but the body was not the
	// mandated JSON shape, even after stripping code fences.
	ErrUnparseable = errors.New("unparseable classification reply")

	// ErrInvalidCategory means the upstream reported a category outside the
	// taxonomy. No default is substituted: silently mis-filing hazardous or
	// medical waste is worse than failing.
	ErrInvalidCategory = errors.New("invalid waste category identified")
)

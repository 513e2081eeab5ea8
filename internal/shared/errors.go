package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed   = fmt.Errorf("authentication failed")
	ErrTokenExpired = fmt.Errorf("access token expired")

	// Matching errors. ErrBadDuration and ErrExtraction are always converted
	// to ErrNoMatch at the selector boundary; ErrNoMatch is demoted to a
	// logged, skipped item by the batch resolver and never aborts a run.
	ErrBadDuration = fmt.Errorf("malformed duration text")
	ErrExtraction  = fmt.Errorf("unexpected search response shape")
	ErrNoMatch     = fmt.Errorf("no matching song found")

	// Fetch and dispatch errors are fatal for the whole run.
	ErrPlaylistFetch = fmt.Errorf("playlist fetch failed")
	ErrDownload      = fmt.Errorf("download dispatch failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

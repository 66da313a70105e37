package riot

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed Riot API call. The kind is assigned at the
// call site that observed the failure, so callers can branch on it without
// inspecting error messages.
type ErrorKind int

const (
	// KindNetwork means no HTTP response was received at all.
	KindNetwork ErrorKind = iota
	// KindNotFound maps from HTTP 404 on identity and match lookups.
	KindNotFound
	// KindNotInGame maps from HTTP 404 on the spectator endpoint. The player
	// simply is not in an active game; this is an expected outcome.
	KindNotInGame
	// KindAuthFailure maps from HTTP 401 and 403.
	KindAuthFailure
	// KindRateLimited maps from HTTP 429.
	KindRateLimited
	// KindUpstream covers every other non-2xx response.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindNotFound:
		return "not found"
	case KindNotInGame:
		return "not in game"
	case KindAuthFailure:
		return "auth failure"
	case KindRateLimited:
		return "rate limited"
	case KindUpstream:
		return "upstream error"
	default:
		return "unknown"
	}
}

// APIError is returned for every failed Riot API call.
type APIError struct {
	Kind       ErrorKind
	StatusCode int // 0 when no response was received
	Endpoint   string
	Err        error // transport-level cause, nil for HTTP status failures
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("riot: %s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}
	return fmt.Sprintf("riot: %s failed with status %d (%s)", e.Endpoint, e.StatusCode, e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyStatus maps an HTTP status code to an ErrorKind.
func classifyStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthFailure
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindUpstream
	}
}

// IsKind reports whether err is an *APIError with the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

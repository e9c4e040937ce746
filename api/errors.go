package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"inteko-cli/auth"
	"inteko-cli/types"
)

// HandleApiError normalizes a non-2xx response into the failure taxonomy.
// 401/403 means the token is missing, expired or invalid; callers treat
// that as "session ended". Other JSON bodies carry the server's own
// message when present.
func HandleApiError(r *http.Response, errBody []byte) *types.ApiError {
	if r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden {
		return &types.ApiError{
			Type:   types.ApiErrorTypeUnauthorized,
			Status: r.StatusCode,
			Msg:    "session is no longer valid",
		}
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return &types.ApiError{
			Type:   types.ApiErrorTypeOther,
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	var envelope types.Envelope
	if err := json.Unmarshal(errBody, &envelope); err != nil {
		log.Printf("Error unmarshalling JSON: %v\n", err)
		return &types.ApiError{
			Type:   types.ApiErrorTypeOther,
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	msg := envelope.Message
	if msg == "" {
		msg = "request failed"
	}

	return &types.ApiError{
		Type:   types.ApiErrorTypeDomain,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

// domainError is for 2xx responses whose business flag is false: a domain
// failure, never a success, surfaced with the server's message when it
// sent one.
func domainError(status int, message string) *types.ApiError {
	if message == "" {
		message = "request failed"
	}

	return &types.ApiError{
		Type:   types.ApiErrorTypeDomain,
		Status: status,
		Msg:    message,
	}
}

func networkError(err error) *types.ApiError {
	// a refused request (no stored session) surfaces here wrapped by
	// http.Client; it is an auth failure, not a transport one
	if errors.Is(err, auth.ErrNoSession) {
		return &types.ApiError{
			Type: types.ApiErrorTypeUnauthorized,
			Msg:  "not signed in",
		}
	}

	return &types.ApiError{
		Type: types.ApiErrorTypeNetwork,
		Msg:  "error sending request: " + err.Error(),
	}
}

package auth

import (
	"errors"
	"net/http"

	"inteko-cli/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// ErrNoSession is returned when an authenticated call is attempted with
// no stored session.
var ErrNoSession = errors.New("not signed in")

// SetAuthHeader attaches the bearer credential to an outgoing request.
// With no session loaded it errors instead, which stops authenticated
// calls from ever going out with an absent token.
func SetAuthHeader(req *http.Request) error {
	if Current == nil {
		return ErrNoSession
	}

	req.Header.Set("Authorization", "Bearer "+Current.Token)

	return nil
}

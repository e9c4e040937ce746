package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"inteko-cli/auth"
	"inteko-cli/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second

// payments go through a mobile-money gateway and can take a while
const slowReqTimeout = 2 * time.Minute

type Api struct{}

var Client types.ApiClient = (*Api)(nil)

var apiHost string

func init() {
	if os.Getenv("INTEKO_API_HOST") != "" {
		apiHost = os.Getenv("INTEKO_API_HOST")
	} else if os.Getenv("INTEKO_ENV") == "development" {
		apiHost = "http://localhost:5000"
	} else {
		apiHost = "https://api.inteko.app"
	}
}

func GetApiHost() string {
	return apiHost
}

// SetApiHost overrides the resolved host. Used by tests to point the
// client at a local fake server.
func SetApiHost(host string) {
	apiHost = host
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip attaches the bearer credential before the request goes out.
// With no session loaded the request is refused here, before dialing.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	err := auth.SetAuthHeader(req)
	if err != nil {
		return nil, err
	}
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

var authenticatedSlowClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: slowReqTimeout,
}

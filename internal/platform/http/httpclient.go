// Package http holds the outbound HTTP client shared by provider adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client tuned for calling third-party APIs.
//
// http.DefaultClient has no timeout, so provider adapters should always be
// given this client instead. timeout bounds the whole request; dialing and
// the TLS handshake get their own shorter limits.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

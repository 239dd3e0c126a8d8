// Package realip resolves the originating client IP of an HTTP request for
// deployments fronted by Cloudflare.
package realip

import (
	"net"
	"net/http"
)

// cfConnectingIP is the header Cloudflare sets to the connecting client's
// address.
const cfConnectingIP = "CF-Connecting-IP"

// FromRequest returns the client IP for r: the CF-Connecting-IP header when
// Cloudflare supplied one, otherwise the host part of RemoteAddr. Returns ""
// when neither is usable.
func FromRequest(r *http.Request) string {
	if ip := r.Header.Get(cfConnectingIP); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. in hand-built test requests.
		return r.RemoteAddr
	}
	return host
}

package shared

import (
	"net"
	"net/http"
	"strings"
)

// UnknownAddress is returned when no source can supply a client address.
const UnknownAddress = "unknown"

// ClientAddress resolves the originating client address for a request.
//
// Sources are tried in decreasing order of trust:
//  1. the transport-level peer address (direct connection)
//  2. the first entry of the X-Forwarded-For header (load balancer/proxy)
//  3. the X-Real-Ip header (nginx proxy)
//
// It never fails; when every source is absent it returns UnknownAddress.
func ClientAddress(r *http.Request) string {
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		// RemoteAddr without a port, e.g. from a unix socket listener
		return r.RemoteAddr
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}

	return UnknownAddress
}

// MaxUserAgentLength bounds the user agent string kept in log records.
const MaxUserAgentLength = 30

// UserAgent returns the request's user agent truncated to
// MaxUserAgentLength, or "unknown" when the header is absent.
func UserAgent(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return UnknownAddress
	}
	if len(ua) > MaxUserAgentLength {
		return ua[:MaxUserAgentLength]
	}
	return ua
}

package tui

import (
	"strings"
)

// categorizeRequestError turns a transport error string into a short,
// actionable message for the footer.
func categorizeRequestError(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "context canceled") ||
		strings.Contains(errLower, "context cancelled") {
		return "Request cancelled"
	}

	if strings.Contains(errLower, "deadline exceeded") ||
		strings.Contains(errLower, "client.timeout exceeded") {
		return "Request timeout - raise request.timeout in config.yaml if the server is slow"
	}

	// Proxy errors often contain "connection refused" as well
	if strings.Contains(errLower, "proxyconnect") {
		return "Proxy connection failed - check HTTP_PROXY/HTTPS_PROXY"
	}

	if strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "dial tcp: lookup") {
		return "DNS resolution failed - check the hostname"
	}

	if strings.Contains(errLower, "connection refused") {
		return "Connection refused - is the server running on that port?"
	}

	if strings.Contains(errLower, "connection reset") {
		return "Connection reset by server"
	}

	if strings.Contains(errLower, "network is unreachable") ||
		strings.Contains(errLower, "no route to host") {
		return "Network unreachable"
	}

	if strings.Contains(errLower, "server gave http response") {
		return "Server speaks plain HTTP - use http://"
	}

	if strings.Contains(errLower, "x509") ||
		strings.Contains(errLower, "certificate") ||
		strings.Contains(errLower, "tls") {
		return categorizeTLSError(errLower, errStr)
	}

	if strings.Contains(errLower, "stopped after") && strings.Contains(errLower, "redirect") {
		return "Too many redirects"
	}

	if strings.Contains(errLower, "unsupported protocol") {
		return "Unsupported URL scheme - use http:// or https://"
	}

	if strings.Contains(errLower, "eof") {
		return "Connection closed unexpectedly"
	}

	if strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "timed out") {
		return "Connection timeout"
	}

	return "Request failed: " + errStr
}

func categorizeTLSError(errLower, errStr string) string {
	switch {
	case strings.Contains(errLower, "unknown authority"):
		return "TLS certificate signed by unknown authority"
	case strings.Contains(errLower, "expired"):
		return "TLS certificate has expired"
	case strings.Contains(errLower, "is valid for"):
		return "TLS hostname mismatch"
	case strings.Contains(errLower, "handshake"):
		return "TLS handshake failed"
	}
	return "TLS error: " + errStr
}

// Package knownuser declares the capabilities a known-user queueing SDK expects from the
// environment it runs in. Connectors for a particular host implement these; the SDK consumes them
// and never sees the host's own request and response types.
package knownuser

// HTTPRequest is the SDK's read-only view of the incoming request.
type HTTPRequest interface {
	UserAgent() string

	// Header returns the value of the named header, or "" when the header is absent.
	Header(name string) string

	AbsoluteURI() string

	// UserHostAddress is the client IP as seen by the edge, not the socket peer.
	UserHostAddress() string

	// CookieValue returns the decoded value of the named cookie. ok is false when the cookie is
	// missing, empty or can't be parsed.
	CookieValue(key string) (value string, ok bool)

	RequestBodyAsString() string
}

// HTTPResponse is the SDK's write-only view of the outgoing response.
type HTTPResponse interface {
	// SetCookie adds a cookie to the response. expiration is in seconds since the epoch.
	SetCookie(name, value, domain string, expiration int64, httpOnly, secure bool)
}

// CryptoProvider hashes queue cookie contents.
type CryptoProvider interface {
	Sha256Hash(secretKey, plaintext string) (string, error)
}

// EnqueueTokenProvider issues the token passed to the waiting room on redirect.
type EnqueueTokenProvider interface {
	EnqueueToken(waitingRoomID string) (string, error)
}

// ConnectorContextProvider bundles everything the SDK needs for one request.
type ConnectorContextProvider interface {
	HTTPRequest() HTTPRequest
	HTTPResponse() HTTPResponse
	CryptoProvider() CryptoProvider
	EnqueueTokenProvider() (EnqueueTokenProvider, error)
}

// package edgeconnector adapts an edge-worker host runtime to the interfaces of a known-user
// queueing SDK.
//
// The host hands every invocation a native request and a native response. They are opaque as far as
// this package is concerned: the adapters only ever call the handful of members declared on
// NativeRequest and NativeResponse, so anything that implements those (the real host bindings, the
// net/http backed RequestHandle and ResponseHandle in this package, or a test double) can be used.
//
// A ContextProvider is built for a single (request, response) pair and must not outlive it. It is
// not safe for concurrent use, and it doesn't need to be: the host invokes the connector once per
// request and nothing is shared between invocations.
//
// COOKIES
//
// Cookies are written back to the host as a complete Set-Cookie directive in the form
//
//	name=<encoded value>; expires=<RFC 1123 date>; [domain=<domain>;] [HttpOnly;] [Secure;] path=/
//
// The SDK reads the same cookies on later requests, so the format is reproduced byte for byte.
//
// CLIENT IP
//
// The edge proxies every request, so the socket peer is never the client. The original client IP is
// published by the platform in the PMUSER_TRUE_CLIENT_IP variable, and that is what the SDK gets.
//
// ENQUEUE TOKENS
//
// When the waiting room requires an enqueue token, the SDK asks the ContextProvider for an
// EnqueueTokenProvider. One has to be configured with SetEnqueueTokenProvider first; asking for it
// before that returns ErrEnqueueTokenProviderNotSet.
package edgeconnector

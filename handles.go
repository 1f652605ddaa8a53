package edgeconnector

import (
	"net/http"

	"github.com/tomasen/realip"
)

// NativeRequest is the part of the host's request object the connector relies on.
type NativeRequest interface {
	// GetHeader returns every value of the named header, or nil if it isn't present.
	GetHeader(name string) []string

	Scheme() string
	Host() string

	// URL is the path and query of the request, without scheme or host.
	URL() string

	// GetVariable returns a platform variable, or "" if it isn't set.
	GetVariable(name string) string
}

// NativeResponse is the part of the host's response object the connector relies on.
type NativeResponse interface {
	// StoreCookie adds a complete Set-Cookie directive to the response.
	StoreCookie(setCookie string)
}

// RequestHandle is an http.Request with the platform variables the edge attaches to it.
// It lets the connector run on top of net/http, outside of the edge platform itself.
type RequestHandle struct {
	*http.Request

	variables map[string]string
}

// NewRequestHandle wraps r. PMUSER_TRUE_CLIENT_IP is taken from the True-Client-IP header when the
// request came through the edge, and from the usual forwarding headers or the remote address
// otherwise.
func NewRequestHandle(r *http.Request) *RequestHandle {
	rh := &RequestHandle{Request: r, variables: map[string]string{}}

	ip := r.Header.Get(TrueClientIPHeader)
	if ip == "" {
		ip = realip.FromRequest(r)
	}
	rh.variables[TrueClientIPVariable] = ip

	return rh
}

// GetHeader implements NativeRequest
func (rh *RequestHandle) GetHeader(name string) []string {
	return rh.Header.Values(name)
}

// Scheme implements NativeRequest
func (rh *RequestHandle) Scheme() string {
	if rh.Request.URL.Scheme != "" {
		return rh.Request.URL.Scheme
	}
	if rh.TLS != nil {
		return "https"
	}
	return "http"
}

// Host implements NativeRequest
func (rh *RequestHandle) Host() string {
	if rh.Request.Host != "" {
		return rh.Request.Host
	}
	return rh.Request.URL.Host
}

// URL implements NativeRequest
func (rh *RequestHandle) URL() string {
	return rh.Request.URL.RequestURI()
}

// GetVariable implements NativeRequest
func (rh *RequestHandle) GetVariable(name string) string {
	return rh.variables[name]
}

// SetVariable sets a platform variable, replacing any previous value.
func (rh *RequestHandle) SetVariable(name, value string) {
	rh.variables[name] = value
}

// ResponseHandle is an http.Response that collects the cookies stored by the connector.
// Notably, the response body is ignored; the embedder writes its own.
type ResponseHandle struct {
	*http.Response
}

// NewResponseHandle creates an empty 200 response.
func NewResponseHandle() *ResponseHandle {
	return &ResponseHandle{Response: &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}}
}

// StoreCookie implements NativeResponse
func (wh *ResponseHandle) StoreCookie(setCookie string) {
	wh.Header.Add(headerSetCookie, setCookie)
}

// CopyHeaders adds every header collected on the handle to dst, typically the header map of an
// http.ResponseWriter before WriteHeader is called.
func (wh *ResponseHandle) CopyHeaders(dst http.Header) {
	for name, values := range wh.Header {
		for _, v := range values {
			dst.Add(name, v)
		}
	}
}

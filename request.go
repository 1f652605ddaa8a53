package edgeconnector

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Khan/edgeconnector/knownuser"
)

// httpRequest implements knownuser.HTTPRequest on top of a NativeRequest
type httpRequest struct {
	native NativeRequest
	log    *zap.SugaredLogger
}

var _ knownuser.HTTPRequest = (*httpRequest)(nil)

func (r *httpRequest) UserAgent() string {
	return r.Header(headerUserAgent)
}

// Header joins multiple values with a comma, the way the host reports them.
func (r *httpRequest) Header(name string) string {
	return strings.Join(r.native.GetHeader(name), ",")
}

// AbsoluteURI concatenates the request parts as they are. Nothing is encoded or validated.
func (r *httpRequest) AbsoluteURI() string {
	return r.native.Scheme() + "://" + r.native.Host() + r.native.URL()
}

func (r *httpRequest) UserHostAddress() string {
	return r.native.GetVariable(TrueClientIPVariable)
}

// CookieValue skips pairs it can't parse, so a malformed cookie set by someone else on the domain
// doesn't hide the queue cookies.
func (r *httpRequest) CookieValue(key string) (string, bool) {
	lines := r.native.GetHeader(headerCookie)
	if len(lines) == 0 || key == "" {
		r.log.Debugf("req_cookie_get: key=%q found=false", key)
		return "", false
	}

	// http.Request.Cookie returns the first cookie named key from every Cookie header
	req := &http.Request{Header: http.Header{headerCookie: lines}}
	c, err := req.Cookie(key)

	// An empty cookie is the same as no cookie
	if err != nil || c.Value == "" {
		r.log.Debugf("req_cookie_get: key=%q found=false", key)
		return "", false
	}

	v, err := decodeURIComponent(c.Value)
	if err != nil {
		r.log.Debugf("req_cookie_get: decode error key=%q got=%s", key, err.Error())
		return "", false
	}

	r.log.Debugf("req_cookie_get: key=%q found=true", key)
	return v, true
}

// RequestBodyAsString is always empty; the host doesn't give the connector access to the body.
func (r *httpRequest) RequestBodyAsString() string {
	return ""
}

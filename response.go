package edgeconnector

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Khan/edgeconnector/knownuser"
)

// httpResponse implements knownuser.HTTPResponse on top of a NativeResponse
type httpResponse struct {
	native NativeResponse
	log    *zap.SugaredLogger
}

var _ knownuser.HTTPResponse = (*httpResponse)(nil)

func (w *httpResponse) SetCookie(name, value, domain string, expiration int64, httpOnly, secure bool) {
	w.native.StoreCookie(formatSetCookie(name, value, domain, expiration, httpOnly, secure))
	w.log.Debugf("resp_cookie_set: name=%q domain=%q expires=%d", name, domain, expiration)
}

// formatSetCookie builds the directive handed to the host. http.Cookie isn't used because its
// String method orders and escapes the attributes differently.
func formatSetCookie(name, value, domain string, expiration int64, httpOnly, secure bool) string {
	var b strings.Builder

	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(encodeURIComponent(value))
	b.WriteString("; expires=")
	b.WriteString(time.Unix(expiration, 0).UTC().Format(http.TimeFormat))
	b.WriteString(";")

	if domain != "" {
		b.WriteString(" domain=")
		b.WriteString(domain)
		b.WriteString(";")
	}

	if httpOnly {
		b.WriteString(" HttpOnly;")
	}

	if secure {
		b.WriteString(" Secure;")
	}

	b.WriteString(" path=/")
	return b.String()
}

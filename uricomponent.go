package edgeconnector

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c is escaped when encoding a URI component. Only letters, digits
// and -_.!~*'() are left alone, which is stricter than both url.QueryEscape and url.PathEscape.
func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}

	return true
}

// encodeURIComponent percent-encodes s so the SDK's cookie reader can decode it back.
func encodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// decodeURIComponent reverses encodeURIComponent. '+' is left as is, and a result that isn't valid
// UTF-8 is an error.
func decodeURIComponent(s string) (string, error) {
	v, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(v) {
		return "", url.EscapeError(s)
	}
	return v, nil
}

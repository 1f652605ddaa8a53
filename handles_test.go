package edgeconnector

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHandle(t *testing.T) {
	assert := assert.New(t)

	r := httptest.NewRequest(http.MethodGet, "http://shop.example.com/checkout?step=2", nil)
	r.Header.Set("User-Agent", "test-agent")
	r.Header.Set("Cookie", "QueueITAccepted-SDFrts345E-V3_sale=EventId%3Dsale")

	rh := NewRequestHandle(r)
	assert.Equal("http", rh.Scheme())
	assert.Equal("shop.example.com", rh.Host())
	assert.Equal("/checkout?step=2", rh.URL())
	assert.Equal([]string{"test-agent"}, rh.GetHeader("user-agent"))
	assert.Nil(rh.GetHeader("x-missing"))

	req := NewContextProvider(rh, NewResponseHandle()).HTTPRequest()
	assert.Equal("http://shop.example.com/checkout?step=2", req.AbsoluteURI())
	assert.Equal("test-agent", req.UserAgent())

	v, ok := req.CookieValue("QueueITAccepted-SDFrts345E-V3_sale")
	assert.True(ok)
	assert.Equal("EventId=sale", v)
}

func TestRequestHandleScheme(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.URL.Scheme = ""
	r.TLS = &tls.ConnectionState{}

	assert.Equal(t, "https", NewRequestHandle(r).Scheme())
}

func TestRequestHandleClientIP(t *testing.T) {
	cases := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"true client ip", map[string]string{"True-Client-IP": "203.0.113.7", "X-Forwarded-For": "10.0.0.1"}, "192.0.2.1:1234", "203.0.113.7"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "198.51.100.9"}, "192.0.2.1:1234", "198.51.100.9"},
		{"remote address", nil, "192.0.2.1:1234", "192.0.2.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			rh := NewRequestHandle(r)
			assert.Equal(t, tc.expected, rh.GetVariable(TrueClientIPVariable))
			assert.Equal(t, tc.expected, NewContextProvider(rh, NewResponseHandle()).HTTPRequest().UserHostAddress())
		})
	}
}

func TestRequestHandleSetVariable(t *testing.T) {
	rh := NewRequestHandle(httptest.NewRequest(http.MethodGet, "/", nil))
	rh.SetVariable(TrueClientIPVariable, "203.0.113.99")

	assert.Equal(t, "203.0.113.99", rh.GetVariable(TrueClientIPVariable))
	assert.Equal(t, "", rh.GetVariable("PMUSER_UNSET"))
}

func TestResponseHandle(t *testing.T) {
	wh := NewResponseHandle()
	assert.Equal(t, http.StatusOK, wh.StatusCode)

	w := NewContextProvider(newFakeRequest(nil), wh).HTTPResponse()
	w.SetCookie("a", "1", "", 1700000000, false, false)
	w.SetCookie("b", "2", "example.com", 1700000000, true, true)

	rec := httptest.NewRecorder()
	wh.CopyHeaders(rec.Header())
	rec.WriteHeader(wh.StatusCode)

	cookies := rec.Result().Header.Values("Set-Cookie")
	require.Len(t, cookies, 2)
	assert.Equal(t, "a=1; expires="+expires1700000000+"; path=/", cookies[0])
	assert.Equal(t, "b=2; expires="+expires1700000000+"; domain=example.com; HttpOnly; Secure; path=/", cookies[1])
}

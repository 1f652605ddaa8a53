package edgeconnector

import (
	"net/http"
)

// fakeRequest implements NativeRequest and nothing more
type fakeRequest struct {
	headers   http.Header
	scheme    string
	host      string
	url       string
	variables map[string]string
}

func newFakeRequest(headers map[string]string) *fakeRequest {
	r := &fakeRequest{headers: http.Header{}, variables: map[string]string{}}
	for k, v := range headers {
		r.headers.Add(k, v)
	}
	return r
}

func (r *fakeRequest) GetHeader(name string) []string { return r.headers.Values(name) }
func (r *fakeRequest) Scheme() string                 { return r.scheme }
func (r *fakeRequest) Host() string                   { return r.host }
func (r *fakeRequest) URL() string                    { return r.url }
func (r *fakeRequest) GetVariable(name string) string { return r.variables[name] }

// fakeResponse records every stored cookie
type fakeResponse struct {
	cookies []string
}

func (w *fakeResponse) StoreCookie(setCookie string) {
	w.cookies = append(w.cookies, setCookie)
}

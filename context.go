package edgeconnector

import (
	"time"

	"go.uber.org/zap"

	"github.com/Khan/edgeconnector/knownuser"
)

// ContextProvider hands the SDK its view of a single (request, response) pair.
type ContextProvider struct {
	request  *httpRequest
	response *httpResponse
	crypto   CryptoProvider

	// nil until SetEnqueueTokenProvider is called with usable arguments
	enqueueTokenProvider *EnqueueTokenProvider

	log *zap.SugaredLogger
	now func() time.Time
}

var _ knownuser.ConnectorContextProvider = (*ContextProvider)(nil)

// Option configures a ContextProvider.
type Option func(*ContextProvider)

// WithLogger logs every host interaction at debug level to l. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cp *ContextProvider) {
		if l != nil {
			cp.log = l.Sugar()
		}
	}
}

// WithClock sets the clock enqueue tokens are issued against. A nil now is ignored.
func WithClock(now func() time.Time) Option {
	return func(cp *ContextProvider) {
		if now != nil {
			cp.now = now
		}
	}
}

// NewContextProvider wraps the native request and response of one invocation.
func NewContextProvider(req NativeRequest, resp NativeResponse, opts ...Option) *ContextProvider {
	cp := &ContextProvider{
		log: zap.NewNop().Sugar(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cp)
	}

	cp.request = &httpRequest{native: req, log: cp.log}
	cp.response = &httpResponse{native: resp, log: cp.log}
	cp.crypto = CryptoProvider{}

	return cp
}

func (cp *ContextProvider) HTTPRequest() knownuser.HTTPRequest {
	return cp.request
}

func (cp *ContextProvider) HTTPResponse() knownuser.HTTPResponse {
	return cp.response
}

func (cp *ContextProvider) CryptoProvider() knownuser.CryptoProvider {
	return cp.crypto
}

// SetEnqueueTokenProvider replaces the enqueue token provider. A nil settings or a validityTime
// below NoExpiry clears it instead. Any other validityTime is accepted as is.
func (cp *ContextProvider) SetEnqueueTokenProvider(settings *Settings, validityTime int64, clientIP string, customData any) {
	if settings == nil || validityTime < NoExpiry {
		cp.log.Debugf("enqueue_token_provider_set: cleared settings=%t validity=%d", settings != nil, validityTime)
		cp.enqueueTokenProvider = nil
		return
	}

	p := NewEnqueueTokenProvider(settings, validityTime, clientIP, customData)
	p.now = cp.now
	cp.enqueueTokenProvider = p

	cp.log.Debugf("enqueue_token_provider_set: customer=%q validity=%d ip=%q", settings.CustomerID, validityTime, clientIP)
}

// EnqueueTokenProvider returns ErrEnqueueTokenProviderNotSet unless a provider is configured.
func (cp *ContextProvider) EnqueueTokenProvider() (knownuser.EnqueueTokenProvider, error) {
	if cp.enqueueTokenProvider == nil {
		return nil, ErrEnqueueTokenProviderNotSet
	}
	return cp.enqueueTokenProvider, nil
}

// ConfigureEnqueueTokens sets or clears the enqueue token provider according to the enqueue token
// fields of settings. The client IP is the one the edge reports for this request.
func (cp *ContextProvider) ConfigureEnqueueTokens(settings *Settings, customData any) {
	if settings == nil || !settings.EnqueueTokenEnabled {
		cp.SetEnqueueTokenProvider(nil, 0, "", nil)
		return
	}
	cp.SetEnqueueTokenProvider(settings, settings.EnqueueTokenValidityTime, cp.request.UserHostAddress(), customData)
}

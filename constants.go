package edgeconnector

import "errors"

// TrueClientIPVariable is the platform variable carrying the client IP as seen by the edge.
const TrueClientIPVariable = "PMUSER_TRUE_CLIENT_IP"

// TrueClientIPHeader is set by the edge on requests it forwards.
const TrueClientIPHeader = "True-Client-IP"

const (
	headerUserAgent = "user-agent"
	headerCookie    = "Cookie"
	headerSetCookie = "Set-Cookie"
)

// NoExpiry is the enqueue token validity time meaning the token never expires. It is the only
// negative validity time SetEnqueueTokenProvider accepts.
const NoExpiry int64 = -1

var (
	// ErrEnqueueTokenProviderNotSet is returned when the SDK asks for an enqueue token provider
	// that was never configured, or was cleared.
	ErrEnqueueTokenProviderNotSet = errors.New("EnqueueTokenProvider is not set!")

	ErrMissingCustomerID  = errors.New("settings: customer id is required")
	ErrMissingSecretKey   = errors.New("settings: secret key is required")
	ErrEmptyWaitingRoomID = errors.New("enqueue token: waiting room id is empty")
)

package edgeconnector

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Khan/edgeconnector/knownuser"
)

// EnqueueClaims are the claims carried by an enqueue token. The registered issuer is the customer
// id and the token id is random per token.
type EnqueueClaims struct {
	jwt.RegisteredClaims

	// WaitingRoomID is the waiting room (event) the token admits to
	WaitingRoomID string `json:"e"`
	Key           string `json:"k,omitempty"`
	IPAddress     string `json:"ip,omitempty"`
	CustomData    any    `json:"cd,omitempty"`
}

// EnqueueTokenProvider issues enqueue tokens for one customer. validityTime is in milliseconds, and
// NoExpiry issues tokens without an expiry.
type EnqueueTokenProvider struct {
	settings     *Settings
	validityTime int64
	clientIP     string
	customData   any

	now func() time.Time
}

var _ knownuser.EnqueueTokenProvider = (*EnqueueTokenProvider)(nil)

// NewEnqueueTokenProvider binds a provider to settings. settings must not be nil.
func NewEnqueueTokenProvider(settings *Settings, validityTime int64, clientIP string, customData any) *EnqueueTokenProvider {
	return &EnqueueTokenProvider{
		settings:     settings,
		validityTime: validityTime,
		clientIP:     clientIP,
		customData:   customData,
		now:          time.Now,
	}
}

// EnqueueToken returns a token signed with the customer's secret key.
func (p *EnqueueTokenProvider) EnqueueToken(waitingRoomID string) (string, error) {
	if waitingRoomID == "" {
		return "", ErrEmptyWaitingRoomID
	}

	now := p.now()
	claims := EnqueueClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   p.settings.CustomerID,
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		WaitingRoomID: waitingRoomID,
		Key:           p.settings.EnqueueTokenKey,
		IPAddress:     p.clientIP,
		CustomData:    p.customData,
	}

	if p.validityTime != NoExpiry {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt(now, p.validityTime))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.settings.SecretKey))
	if err != nil {
		return "", fmt.Errorf("enqueue token: %w", err)
	}
	return token, nil
}

// ParseEnqueueToken verifies token against secretKey and returns its claims. Tokens signed with
// anything but HS256, and expired tokens, are rejected.
func ParseEnqueueToken(token, secretKey string) (*EnqueueClaims, error) {
	claims := &EnqueueClaims{}

	// jwt.ParseWithClaims does everything including parsing and verification
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if alg := t.Method.Alg(); alg != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", alg)
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue token: %w", err)
	}
	if !t.Valid {
		return nil, fmt.Errorf("enqueue token: invalid token")
	}
	return claims, nil
}

// expiresAt adds validityTime milliseconds to now without going through time.Duration, which can't
// hold validity times beyond roughly 292 years.
func expiresAt(now time.Time, validityTime int64) time.Time {
	sec, ms := validityTime/1000, validityTime%1000
	return time.Unix(now.Unix()+sec, int64(now.Nanosecond())+ms*int64(time.Millisecond))
}

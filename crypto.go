package edgeconnector

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/Khan/edgeconnector/knownuser"
)

// CryptoProvider signs queue cookies with HMAC-SHA256.
type CryptoProvider struct{}

var _ knownuser.CryptoProvider = CryptoProvider{}

// Sha256Hash returns the lower-case hex HMAC-SHA256 of plaintext keyed with secretKey.
func (CryptoProvider) Sha256Hash(secretKey, plaintext string) (string, error) {
	mac := hmac.New(sha256.New, []byte(secretKey))
	if _, err := mac.Write([]byte(plaintext)); err != nil {
		return "", err
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}

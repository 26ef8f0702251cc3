package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
)

const nonceSize = 12

// claims is the JSON payload sealed inside a session token. Timestamps are
// Unix seconds.
type claims struct {
	AccountID int64 `json:"account_id"`
	IssuedAt  int64 `json:"issued_at"`
	NotBefore int64 `json:"not_before"`
	ExpiresAt int64 `json:"expires_at"`
}

// TokenCodec issues and validates stateless session tokens. A token is the
// base64url encoding of nonce||ciphertext, where the ciphertext is the
// AES-GCM seal of the JSON claims under a key derived from the configured
// process secret. Tokens are opaque to callers and carry no server-side
// state: there is no revocation list, so a leaked token stays valid until
// its natural expiry.
type TokenCodec struct {
	aead     cipher.AEAD
	validity time.Duration
	now      func() time.Time
}

// NewTokenCodec derives a 256-bit AES key from secret and returns a codec
// issuing tokens valid for the given duration.
func NewTokenCodec(secret string, validity time.Duration) (*TokenCodec, error) {
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	return &TokenCodec{aead: aead, validity: validity, now: time.Now}, nil
}

// Issue seals a fresh set of claims for accountID. The token is valid from
// now until now plus the configured validity.
func (c *TokenCodec) Issue(accountID int64) (string, error) {
	now := c.now()
	payload, err := json.Marshal(claims{
		AccountID: accountID,
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		ExpiresAt: now.Add(c.validity).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	sealed := c.aead.Seal(nonce, nonce, payload, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Validate decrypts and authenticates token and checks the validity window
// not_before <= now <= expires_at. Every failure mode (bad encoding, failed
// authentication, malformed claims, outside the window) maps to the same
// ErrInvalidToken so callers cannot tell which check rejected the token.
func (c *TokenCodec) Validate(token string) (*models.Session, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) <= nonceSize {
		return nil, common.ErrInvalidToken
	}

	payload, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	var cl claims
	if err := json.Unmarshal(payload, &cl); err != nil {
		return nil, common.ErrInvalidToken
	}

	session := &models.Session{
		AccountID: cl.AccountID,
		IssuedAt:  time.Unix(cl.IssuedAt, 0),
		NotBefore: time.Unix(cl.NotBefore, 0),
		ExpiresAt: time.Unix(cl.ExpiresAt, 0),
	}

	now := c.now()
	if now.Before(session.NotBefore) || now.After(session.ExpiresAt) {
		return nil, common.ErrInvalidToken
	}

	return session, nil
}

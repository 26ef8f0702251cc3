package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics only if the system RNG is unavailable, which is not a
// recoverable condition.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Package auth implements credential hashing, stateless encrypted session
// tokens, and the authorization guard that turns a raw credential header
// into a validated session.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"qanda-service/internal/common"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
	algorithmID         = "argon2id"
)

// HashPassword derives an argon2id digest from password with a fresh random
// salt and returns the PHC-encoded string
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash). Two calls on the same
// password produce different encodings.
func HashPassword(password string) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword recomputes the digest of password using the salt and
// parameters embedded in encodedHash and compares in constant time.
// A malformed encoding fails with ErrCrypto; a mismatching password is
// reported as (false, nil) and left to the caller to classify.
func VerifyPassword(encodedHash, password string) (bool, error) {
	salt, expected, params, err := decodePHC(encodedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	computed := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

type phcParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodePHC(encodedHash string) ([]byte, []byte, phcParams, error) {
	var params phcParams

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, nil, params, fmt.Errorf("invalid hash format")
	}
	if parts[1] != algorithmID {
		return nil, nil, params, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2 version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, fmt.Errorf("invalid parameters: %v", err)
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return nil, nil, params, fmt.Errorf("invalid parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return nil, nil, params, fmt.Errorf("invalid salt encoding")
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, nil, params, fmt.Errorf("invalid digest encoding")
	}

	return salt, hash, params, nil
}

package auth

import (
	"strings"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
)

// Guard turns a raw credential header value into a validated session. It is
// a pure function of the header and the clock: no side effects, no I/O. It
// gates every mutation operation; read-only listing does not pass through
// it.
type Guard struct {
	codec *TokenCodec
}

func NewGuard(codec *TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Authorize validates the header value as a session token. An optional
// "Bearer " prefix is tolerated. An empty header or any validation failure
// rejects with ErrInvalidToken.
func (g *Guard) Authorize(header string) (*models.Session, error) {
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return nil, common.ErrInvalidToken
	}
	return g.codec.Validate(token)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"qanda-service/internal/common"
	"qanda-service/internal/server/auth"
	"qanda-service/internal/server/models"
	"qanda-service/internal/server/repositories/accounts"
)

// AccountService handles registration and login, delegating password
// hashing to the credential vault and token minting to the session codec.
type AccountService struct {
	accounts accounts.Repository
	codec    *auth.TokenCodec
}

func NewAccountService(repo accounts.Repository, codec *auth.TokenCodec) *AccountService {
	return &AccountService{accounts: repo, codec: codec}
}

// Register hashes the password and persists a new account. The plaintext
// password never reaches the repository. A uniqueness violation on email
// surfaces as ErrDuplicateAccount, classified by the repository from the
// store's constraint signal rather than a racy pre-check.
func (s *AccountService) Register(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingParameters
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	account, err := s.accounts.Create(ctx, &models.Account{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password are indistinguishable to the caller; only a
// malformed stored hash surfaces as ErrCrypto.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrMissingParameters
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrWrongCredential
		}
		return "", err
	}

	ok, err := auth.VerifyPassword(account.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrWrongCredential
	}

	return s.codec.Issue(account.ID)
}

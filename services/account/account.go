package account

import (
	"fmt"
	"strings"
	"time"

	accountRepo "ecoscan/database/repository/account"
	"ecoscan/models"
	"ecoscan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAccountService implements AccountService against an injected
// account repository.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}

// Register validates the input, creates the account with a bcrypt credential
// hash, and mints a bearer token. Email uniqueness is enforced by the store,
// so a concurrent duplicate registration fails with ErrAccountExists instead
// of writing twice.
func (s *DefaultAccountService) Register(email, secret string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || secret == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash secret", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	acct := &models.Account{
		ID:             uuid.NewString(),
		Email:          email,
		CredentialHash: string(hash),
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(acct); err != nil {
		if err == accountRepo.ErrDuplicateEmail {
			return nil, ErrAccountExists
		}
		utils.GetLogger().Error("Register: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.mintResponse(acct)
}

// Login authenticates the credentials. Unknown email and wrong secret fail
// with the identical ErrInvalidCredentials.
func (s *DefaultAccountService) Login(email, secret string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || secret == "" {
		return nil, ErrInvalidInput
	}

	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.CredentialHash), []byte(secret)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.mintResponse(acct)
}

func (s *DefaultAccountService) mintResponse(acct *models.Account) (*AuthResponse, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Email, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &AuthResponse{
		ID:    acct.ID,
		Email: acct.Email,
		Token: token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

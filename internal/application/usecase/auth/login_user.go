// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"strings"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Name     string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. A missing user, a name mismatch and a wrong
// password all yield the same invalid-credentials error so that responses
// never reveal whether an email is registered.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedLogin,
			"unexpected failure loading user",
			err,
		)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if strings.TrimSpace(input.Name) != user.Name {
		return nil, invalidCredentials()
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.Generate(ctx, user.ID, user.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedLogin,
			"unexpected failure issuing access token",
			err,
		)
	}

	return &LoginUserOutput{
		User:        user,
		AccessToken: token,
	}, nil
}

func invalidCredentials() *domainerror.AuthError {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)
}

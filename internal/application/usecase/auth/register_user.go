// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User        *entity.User
	AccessToken string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"email format is invalid",
			domainerror.ErrInvalidUserEmail,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > entity.MaxUserNameLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUserName,
			"name must be a non-empty string of at most 100 characters",
			domainerror.ErrInvalidUserName,
		)
	}

	password, err := valueobject.NewPassword(input.Password)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPassword,
			"password must be at least 12 characters and contain a symbol",
			domainerror.ErrInvalidPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedRegister,
			"unexpected failure checking email uniqueness",
			err,
		)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(password.String())
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedRegister,
			"unexpected failure hashing password",
			err,
		)
	}

	created, err := uc.userRepo.Create(ctx, entity.NewUser(email, name, hash))
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedRegister,
			"unexpected failure creating user",
			err,
		)
	}

	token, err := uc.tokenService.Generate(ctx, created.ID, created.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedRegister,
			"unexpected failure issuing access token",
			err,
		)
	}

	return &RegisterUserOutput{
		User:        created,
		AccessToken: token,
	}, nil
}

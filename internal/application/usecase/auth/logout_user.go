// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	AccessToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	LoggedOut bool
}

// LogoutUserUseCase handles user logout logic. The token stays
// cryptographically valid until its natural expiry, so revocation works by
// blacklisting its identifier for exactly that long.
type LogoutUserUseCase struct {
	tokenService  adapter.TokenService
	blacklistRepo adapter.TokenBlacklistRepository
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(
	tokenService adapter.TokenService,
	blacklistRepo adapter.TokenBlacklistRepository,
) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService:  tokenService,
		blacklistRepo: blacklistRepo,
	}
}

// Execute performs the logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	claims, err := uc.tokenService.Validate(ctx, input.AccessToken)
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			return nil, err
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token is invalid",
			err,
		)
	}

	entry := adapter.BlacklistEntry{
		TokenIdentifier: claims.Identifier(),
		UserID:          claims.UserID,
		ExpiresAt:       claims.ExpiresAt,
	}
	if err := uc.blacklistRepo.Add(ctx, entry); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnexpectedLogout,
			"unexpected failure revoking token",
			err,
		)
	}

	return &LogoutUserOutput{LoggedOut: true}, nil
}

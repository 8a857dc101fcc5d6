// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

type mockUserRepository struct {
	createFunc      func(ctx context.Context, user *entity.User) (*entity.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	existsFunc      func(ctx context.Context, email string) (bool, error)

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = entity.UserID(1)
	return user, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, email)
	}
	return false, nil
}

type mockPasswordService struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordService) HashPassword(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordService) VerifyPassword(hashedPassword, password string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(hashedPassword, password)
	}
	return nil
}

type mockTokenService struct {
	generateFunc func(ctx context.Context, userID entity.UserID, email string) (string, error)
	validateFunc func(ctx context.Context, token string) (*adapter.TokenClaims, error)
}

func (m *mockTokenService) Generate(ctx context.Context, userID entity.UserID, email string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, email)
	}
	return "token", nil
}

func (m *mockTokenService) Validate(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, token)
	}
	return nil, domainerror.ErrInvalidToken
}

type mockBlacklistRepository struct {
	addFunc    func(ctx context.Context, entry adapter.BlacklistEntry) error
	existsFunc func(ctx context.Context, tokenIdentifier string) (bool, error)

	addCalls  int
	lastEntry adapter.BlacklistEntry
}

func (m *mockBlacklistRepository) Add(ctx context.Context, entry adapter.BlacklistEntry) error {
	m.addCalls++
	m.lastEntry = entry
	if m.addFunc != nil {
		return m.addFunc(ctx, entry)
	}
	return nil
}

func (m *mockBlacklistRepository) Exists(ctx context.Context, tokenIdentifier string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, tokenIdentifier)
	}
	return false, nil
}

func authErrorCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
	return authErr.Code
}

const validPassword = "correct-horse-battery!"

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	validInput := func() RegisterUserInput {
		return RegisterUserInput{
			Email:    "  Taro@Example.COM ",
			Name:     "Taro",
			Password: validPassword,
		}
	}

	t.Run("registers a user with a normalized email", func(t *testing.T) {
		userRepo := &mockUserRepository{
			existsFunc: func(ctx context.Context, email string) (bool, error) {
				if email != "taro@example.com" {
					t.Errorf("expected normalized email, got %q", email)
				}
				return false, nil
			},
		}
		uc := NewRegisterUserUseCase(userRepo, &mockPasswordService{}, &mockTokenService{})

		output, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "taro@example.com" {
			t.Errorf("expected stored email 'taro@example.com', got %q", output.User.Email)
		}
		if output.User.PasswordHash == validPassword {
			t.Error("expected the password to be hashed before storage")
		}
		if output.AccessToken == "" {
			t.Error("expected an access token to be issued")
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(input *RegisterUserInput)
			wantCode domainerror.AuthErrorCode
		}{
			{
				name:     "malformed email",
				mutate:   func(in *RegisterUserInput) { in.Email = "not-an-email" },
				wantCode: domainerror.ErrCodeInvalidEmail,
			},
			{
				name:     "blank name",
				mutate:   func(in *RegisterUserInput) { in.Name = "   " },
				wantCode: domainerror.ErrCodeInvalidUserName,
			},
			{
				name:     "short password",
				mutate:   func(in *RegisterUserInput) { in.Password = "short!" },
				wantCode: domainerror.ErrCodeInvalidPassword,
			},
			{
				name:     "password without a symbol",
				mutate:   func(in *RegisterUserInput) { in.Password = "alphanumeric123only" },
				wantCode: domainerror.ErrCodeInvalidPassword,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				userRepo := &mockUserRepository{}
				uc := NewRegisterUserUseCase(userRepo, &mockPasswordService{}, &mockTokenService{})
				input := validInput()
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if code := authErrorCode(t, err); code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, code)
				}
				if userRepo.createCalls != 0 {
					t.Errorf("expected Create not to be called, got %d calls", userRepo.createCalls)
				}
			})
		}
	})

	t.Run("duplicate email is rejected before hashing", func(t *testing.T) {
		hashed := false
		userRepo := &mockUserRepository{
			existsFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}
		passwordService := &mockPasswordService{
			hashFunc: func(password string) (string, error) {
				hashed = true
				return "", nil
			},
		}
		uc := NewRegisterUserUseCase(userRepo, passwordService, &mockTokenService{})

		_, err := uc.Execute(ctx, validInput())
		if code := authErrorCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
		if hashed {
			t.Error("expected no hashing for a duplicate email")
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	storedUser := func() *entity.User {
		return &entity.User{
			ID:           entity.UserID(1),
			Email:        "taro@example.com",
			Name:         "Taro",
			PasswordHash: "hashed",
		}
	}

	t.Run("logs in with correct credentials", func(t *testing.T) {
		userRepo := &mockUserRepository{
			findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return storedUser(), nil
			},
		}
		uc := NewLoginUserUseCase(userRepo, &mockPasswordService{}, &mockTokenService{})

		output, err := uc.Execute(ctx, LoginUserInput{
			Email:    "Taro@Example.com",
			Name:     "Taro",
			Password: validPassword,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token to be issued")
		}
	})

	t.Run("credential failures are indistinguishable", func(t *testing.T) {
		tests := []struct {
			name  string
			repo  *mockUserRepository
			input LoginUserInput
		}{
			{
				name: "unknown email",
				repo: &mockUserRepository{},
				input: LoginUserInput{
					Email: "nobody@example.com", Name: "Taro", Password: validPassword,
				},
			},
			{
				name: "wrong name",
				repo: &mockUserRepository{
					findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
						return storedUser(), nil
					},
				},
				input: LoginUserInput{
					Email: "taro@example.com", Name: "Jiro", Password: validPassword,
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewLoginUserUseCase(tt.repo, &mockPasswordService{}, &mockTokenService{})

				_, err := uc.Execute(ctx, tt.input)
				if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
					t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
				}
			})
		}

		t.Run("wrong password", func(t *testing.T) {
			userRepo := &mockUserRepository{
				findByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
					return storedUser(), nil
				},
			}
			passwordService := &mockPasswordService{
				verifyFunc: func(hashedPassword, password string) error {
					return errors.New("mismatch")
				},
			}
			uc := NewLoginUserUseCase(userRepo, passwordService, &mockTokenService{})

			_, err := uc.Execute(ctx, LoginUserInput{
				Email: "taro@example.com", Name: "Taro", Password: "wrong-password!",
			})
			if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
			}
		})
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	expiry := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("blacklists the token id until natural expiry", func(t *testing.T) {
		tokenService := &mockTokenService{
			validateFunc: func(ctx context.Context, token string) (*adapter.TokenClaims, error) {
				return &adapter.TokenClaims{
					UserID:    entity.UserID(1),
					Email:     "taro@example.com",
					TokenID:   "jti-123",
					IssuedAt:  expiry.Add(-time.Hour),
					ExpiresAt: expiry,
				}, nil
			},
		}
		blacklist := &mockBlacklistRepository{}
		uc := NewLogoutUserUseCase(tokenService, blacklist)

		output, err := uc.Execute(ctx, LogoutUserInput{AccessToken: "token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.LoggedOut {
			t.Error("expected LoggedOut to be true")
		}
		if blacklist.lastEntry.TokenIdentifier != "jti-123" {
			t.Errorf("expected blacklist key 'jti-123', got %q", blacklist.lastEntry.TokenIdentifier)
		}
		if !blacklist.lastEntry.ExpiresAt.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, blacklist.lastEntry.ExpiresAt)
		}
	})

	t.Run("falls back to subject plus issued-at without a token id", func(t *testing.T) {
		issued := expiry.Add(-time.Hour)
		tokenService := &mockTokenService{
			validateFunc: func(ctx context.Context, token string) (*adapter.TokenClaims, error) {
				return &adapter.TokenClaims{
					UserID:    entity.UserID(7),
					IssuedAt:  issued,
					ExpiresAt: expiry,
				}, nil
			},
		}
		blacklist := &mockBlacklistRepository{}
		uc := NewLogoutUserUseCase(tokenService, blacklist)

		_, err := uc.Execute(ctx, LogoutUserInput{AccessToken: "token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims := adapter.TokenClaims{UserID: entity.UserID(7), IssuedAt: issued}
		if blacklist.lastEntry.TokenIdentifier != claims.Identifier() {
			t.Errorf("expected identifier %q, got %q", claims.Identifier(), blacklist.lastEntry.TokenIdentifier)
		}
	})

	t.Run("an invalid token is rejected without touching the blacklist", func(t *testing.T) {
		tokenService := &mockTokenService{
			validateFunc: func(ctx context.Context, token string) (*adapter.TokenClaims, error) {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeExpiredToken,
					"token has expired",
					domainerror.ErrExpiredToken,
				)
			},
		}
		blacklist := &mockBlacklistRepository{}
		uc := NewLogoutUserUseCase(tokenService, blacklist)

		_, err := uc.Execute(ctx, LogoutUserInput{AccessToken: "stale"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeExpiredToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeExpiredToken, code)
		}
		if blacklist.addCalls != 0 {
			t.Errorf("expected Add not to be called, got %d calls", blacklist.addCalls)
		}
	})
}

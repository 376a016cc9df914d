package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/platform/logger"
)

type AdminStore interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type RefreshTokenCache interface {
	SaveRefresh(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Generate(userID string) (access, refresh string, err error)
	ValidateAccessToken(token string) (string, error)
	ValidateRefreshToken(token string) (string, error)
}

type AuthUseCase struct {
	admins     AdminStore
	tokens     RefreshTokenCache
	hasher     PasswordHasher
	issuer     TokenIssuer
	refreshTTL time.Duration
	log        *logger.Logger
}

func NewAuthUseCase(admins AdminStore, tokens RefreshTokenCache, hasher PasswordHasher, issuer TokenIssuer, refreshTTL time.Duration, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		admins:     admins,
		tokens:     tokens,
		hasher:     hasher,
		issuer:     issuer,
		refreshTTL: refreshTTL,
		log:        log.With("component", "auth"),
	}
}

// Bootstrap creates the first admin account when there is none yet.
func (uc *AuthUseCase) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := uc.admins.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := uc.admins.Create(ctx, &domain.AdminUser{Email: normalizeEmail(email), Password: hash}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	uc.log.Info("bootstrap admin created", "email", normalizeEmail(email))
	return nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := uc.admins.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCreds) {
			return "", "", domain.ErrInvalidCreds
		}
		return "", "", err
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", "", domain.ErrInvalidCreds
	}
	return uc.generateAndSaveTokens(ctx, user.ID.String())
}

func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	userID, err := uc.issuer.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", domain.ErrInvalidCreds
	}
	cachedID, err := uc.tokens.CheckRefresh(ctx, oldRefreshToken)
	if err != nil || cachedID != userID {
		return "", "", domain.ErrTokenRevoked
	}
	_ = uc.tokens.DeleteRefresh(ctx, oldRefreshToken)

	return uc.generateAndSaveTokens(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokens.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) ValidateAccess(token string) (string, error) {
	return uc.issuer.ValidateAccessToken(token)
}

func (uc *AuthUseCase) generateAndSaveTokens(ctx context.Context, userID string) (string, string, error) {
	access, refresh, err := uc.issuer.Generate(userID)
	if err != nil {
		return "", "", err
	}
	if err := uc.tokens.SaveRefresh(ctx, userID, refresh, uc.refreshTTL); err != nil {
		return "", "", fmt.Errorf("save refresh token: %w", err)
	}
	return access, refresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

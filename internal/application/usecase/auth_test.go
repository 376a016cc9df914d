package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/infrastructure/cache"
	"github.com/waste3d/course-admin/internal/infrastructure/security"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	mu    sync.Mutex
	users map[string]*domain.AdminUser
}

func (f *fakeAdmins) Create(_ context.Context, u *domain.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return domain.ErrAlreadyExists
	}
	_ = u.BeforeCreate(nil)
	f.users[u.Email] = u
	return nil
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrInvalidCreds
	}
	return u, nil
}

func (f *fakeAdmins) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func newAuth(t *testing.T) (*AuthUseCase, *fakeAdmins) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	admins := &fakeAdmins{users: map[string]*domain.AdminUser{}}
	uc := NewAuthUseCase(
		admins,
		cache.NewTokenCache(client),
		security.NewPasswordHasher(),
		security.NewTokenManager("access-secret", "refresh-secret"),
		time.Hour,
		nil,
	)
	return uc, admins
}

func TestAuthUseCase_BootstrapOnce(t *testing.T) {
	uc, admins := newAuth(t)
	ctx := context.Background()

	require.NoError(t, uc.Bootstrap(ctx, " Admin@Example.com ", "s3cret"))
	require.NoError(t, uc.Bootstrap(ctx, "other@example.com", "s3cret"))
	require.NoError(t, uc.Bootstrap(ctx, "", ""))

	assert.Len(t, admins.users, 1)
	assert.Contains(t, admins.users, "admin@example.com")
	assert.NotEqual(t, "s3cret", admins.users["admin@example.com"].Password)
}

func TestAuthUseCase_LoginRefreshLogout(t *testing.T) {
	uc, admins := newAuth(t)
	ctx := context.Background()
	require.NoError(t, uc.Bootstrap(ctx, "admin@example.com", "s3cret"))
	userID := admins.users["admin@example.com"].ID.String()

	_, _, err := uc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCreds)
	_, _, err = uc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCreds)

	access, refresh, err := uc.Login(ctx, "ADMIN@example.com", "s3cret")
	require.NoError(t, err)

	got, err := uc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, refresh2, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)

	// the rotated token cannot be used twice
	_, _, err = uc.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	require.NoError(t, uc.Logout(ctx, refresh2))
	_, _, err = uc.Refresh(ctx, refresh2)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	_, _, err = uc.Refresh(ctx, access)
	assert.ErrorIs(t, err, domain.ErrInvalidCreds)
}

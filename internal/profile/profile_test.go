package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/store"
)

// plainVerifier skips bcrypt so tests stay fast.
type plainVerifier struct{}

func (plainVerifier) Hash(password string) (string, error) { return "plain:" + password, nil }

func (plainVerifier) Compare(hash, password string) error {
	if hash != "plain:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewServiceWithVerifier(s.ProfileRepo(), plainVerifier{})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "xiaoming", "secret", RoleLearner)
	require.NoError(t, err)
	assert.Equal(t, "xiaoming", created.Username)
	assert.Equal(t, RoleLearner, created.Role)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Login(ctx, "xiaoming", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "mei", "secret", RoleLearner)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "mei", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "  ", "secret", RoleLearner)
	assert.Error(t, err)

	_, err = svc.Register(ctx, "ok", "abc", RoleLearner)
	assert.Error(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup", "secret", RoleLearner)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup", "other", RoleLearner)
	assert.ErrorIs(t, err, store.ErrProfileExists)
}

func TestHasAny(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	any, err := svc.HasAny(ctx)
	require.NoError(t, err)
	assert.False(t, any)

	_, err = svc.Register(ctx, "first", "secret", RoleAdmin)
	require.NoError(t, err)

	any, err = svc.HasAny(ctx)
	require.NoError(t, err)
	assert.True(t, any)
}

func TestBcryptVerifierRoundTrip(t *testing.T) {
	v := BcryptVerifier{}
	hash, err := v.Hash("pa55word")
	require.NoError(t, err)
	assert.NoError(t, v.Compare(hash, "pa55word"))
	assert.Error(t, v.Compare(hash, "other"))
}

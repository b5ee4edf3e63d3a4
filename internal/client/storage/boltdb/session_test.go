package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/favkeeper/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func validSession() *storage.SessionData {
	return &storage.SessionData{
		Username:  "testuser",
		Token:     "some.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
}

func TestSaveAndGetSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, validSession()))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, "some.jwt.token", got.Token)
}

func TestGetSession_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSaveSession_ReplacesPrevious(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, validSession()))

	second := validSession()
	second.Username = "otheruser"
	second.Token = "another.jwt.token"
	require.NoError(t, s.SaveSession(ctx, second))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "otheruser", got.Username)
	assert.Equal(t, "another.jwt.token", got.Token)
}

func TestDeleteSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, validSession()))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestDeleteSession_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	err := s.DeleteSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestIsAuthenticated(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	// No session yet
	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Valid session
	require.NoError(t, s.SaveSession(ctx, validSession()))

	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Expired session
	expired := validSession()
	expired.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.NoError(t, s.SaveSession(ctx, expired))

	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveSession(ctx, validSession()))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)
}

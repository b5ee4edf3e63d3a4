package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/favkeeper/internal/server/storage"
)

func TestStorage_AddAndListFavorites(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.CreateUser(ctx, newUser("alice")))

	require.NoError(t, s.AddFavorite(ctx, "alice", "1"))
	require.NoError(t, s.AddFavorite(ctx, "alice", "42"))
	require.NoError(t, s.AddFavorite(ctx, "alice", "7"))

	favs, err := s.ListFavorites(ctx, "alice")
	require.NoError(t, err)

	// Порядок вставки сохраняется
	assert.Equal(t, []string{"1", "42", "7"}, favs)
}

func TestStorage_AddFavorite_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.CreateUser(ctx, newUser("alice")))

	require.NoError(t, s.AddFavorite(ctx, "alice", "1"))
	require.NoError(t, s.AddFavorite(ctx, "alice", "1"))

	favs, err := s.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, favs)
}

func TestStorage_AddFavorite_UserNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	err := s.AddFavorite(ctx, "nobody", "1")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_RemoveFavorite(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.CreateUser(ctx, newUser("alice")))
	require.NoError(t, s.AddFavorite(ctx, "alice", "1"))
	require.NoError(t, s.AddFavorite(ctx, "alice", "2"))

	require.NoError(t, s.RemoveFavorite(ctx, "alice", "1"))

	favs, err := s.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, favs)
}

func TestStorage_RemoveFavorite_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.CreateUser(ctx, newUser("alice")))
	require.NoError(t, s.AddFavorite(ctx, "alice", "1"))

	err := s.RemoveFavorite(ctx, "alice", "99")
	assert.ErrorIs(t, err, storage.ErrFavoriteNotFound)

	// Список не изменился
	favs, err := s.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, favs)
}

func TestStorage_RemoveFavorite_UserNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	err := s.RemoveFavorite(ctx, "nobody", "1")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.CreateUser(ctx, newUser("alice")))

	const goroutines = 32

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", i)
			_ = s.AddFavorite(ctx, "alice", id)
			// Дубликат должен остаться no-op даже под гонкой
			_ = s.AddFavorite(ctx, "alice", id)
		}(i)
	}
	wg.Wait()

	favs, err := s.ListFavorites(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, favs, goroutines)

	seen := make(map[string]bool)
	for _, fav := range favs {
		assert.False(t, seen[fav], "duplicate favorite %s", fav)
		seen[fav] = true
	}
}

func TestStorage_ConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	const goroutines = 16

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.CreateUser(ctx, newUser("race"))
		}()
	}
	wg.Wait()
	close(errs)

	// Ровно одна регистрация проходит, остальные получают ErrUserAlreadyExists
	var okCount, dupCount int
	for err := range errs {
		switch {
		case err == nil:
			okCount++
		default:
			require.ErrorIs(t, err, storage.ErrUserAlreadyExists)
			dupCount++
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, goroutines-1, dupCount)
}

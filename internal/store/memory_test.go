package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOTPNotFound))
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	exp := time.Now().Add(5 * time.Minute)

	require.NoError(t, s.Put(ctx, "a@x.com", domain.OtpRecord{Identity: "a@x.com", Code: "111111", ExpiresAt: exp}))
	require.NoError(t, s.Put(ctx, "a@x.com", domain.OtpRecord{Identity: "a@x.com", Code: "222222", ExpiresAt: exp}))

	rec, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", rec.Code)
}

func TestMemoryStore_DeleteReportsRemoval(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a@x.com", domain.OtpRecord{Identity: "a@x.com", Code: "111111"}))

	deleted, err := s.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStore_IdentitiesAreIndependent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a@x.com", domain.OtpRecord{Identity: "a@x.com", Code: "111111"}))
	require.NoError(t, s.Put(ctx, "b@x.com", domain.OtpRecord{Identity: "b@x.com", Code: "222222"}))

	_, err := s.Delete(ctx, "a@x.com")
	require.NoError(t, err)

	rec, err := s.Get(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", rec.Code)
}

func TestMemoryStore_ConcurrentDeleteSingleWinner(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "a@x.com", domain.OtpRecord{Identity: "a@x.com", Code: "111111"}))

	const attempts = 16
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deleted, err := s.Delete(ctx, "a@x.com")
			assert.NoError(t, err)
			wins <- deleted
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for w := range wins {
		if w {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

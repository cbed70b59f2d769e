package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/ArturCreativeLab/studio-api/internal/adapters/redis"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
)

func TestMemSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "mem-1",
		UserID:    domainauth.GuestUserID,
		Name:      domainauth.GuestName,
		Email:     domainauth.GuestEmail,
		Role:      domainauth.RoleGuest,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestMemSessionStore_GetNonExistent(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.Equal(t, redisstore.ErrNotFound, err)
}

func TestMemSessionStore_SaveRejectsExpired(t *testing.T) {
	store := NewSessionStore()

	err := store.Save(context.Background(), domainauth.Session{
		ID:        "mem-expired",
		ExpiresAt: time.Now().Add(-time.Second),
	})
	assert.Error(t, err)
}

func TestMemSessionStore_ExpiredDroppedOnGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "mem-ttl",
		Role:      domainauth.RoleGuest,
		ExpiresAt: time.Now().Add(20 * time.Millisecond),
	}
	require.NoError(t, store.Save(ctx, session))

	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(ctx, "mem-ttl")
	assert.Equal(t, redisstore.ErrNotFound, err)
}

func TestMemSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "mem-del",
		Role:      domainauth.RoleGuest,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "mem-del"))

	_, err := store.Get(ctx, "mem-del")
	assert.Equal(t, redisstore.ErrNotFound, err)

	assert.NoError(t, store.Delete(ctx, "mem-del"))
}

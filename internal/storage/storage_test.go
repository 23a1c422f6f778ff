package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/email-validator/internal/config"
)

func TestOpenNothingConfigured(t *testing.T) {
	s := Open(context.Background(), config.StorageConfig{})

	assert.Nil(t, s.DB)
	assert.Nil(t, s.Redis)

	// Close must be a no-op on empty stores
	s.Close()
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s := Open(context.Background(), config.StorageConfig{
		RedisURL: "redis://" + mr.Addr(),
	})
	require.NotNil(t, s.Redis)
	assert.Nil(t, s.DB)

	ctx := context.Background()
	require.NoError(t, s.Redis.Set(ctx, "k", "v", time.Minute).Err())
	got, err := s.Redis.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	s.Close()
	assert.Nil(t, s.Redis)
}

func TestOpenRedisBareAddr(t *testing.T) {
	mr := miniredis.RunT(t)

	// host:port without a scheme must also work
	s := Open(context.Background(), config.StorageConfig{
		RedisURL: mr.Addr(),
	})
	require.NotNil(t, s.Redis)
	s.Close()
}

func TestOpenRedisUnreachable(t *testing.T) {
	// Dead endpoint: startup must succeed with a nil handle
	s := Open(context.Background(), config.StorageConfig{
		RedisURL: "redis://127.0.0.1:1",
	})
	assert.Nil(t, s.Redis)
	s.Close()
}

func TestOpenDatabaseUnreachable(t *testing.T) {
	s := Open(context.Background(), config.StorageConfig{
		DatabaseURL: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1",
	})
	assert.Nil(t, s.DB)
	s.Close()
}

func TestCloseReleasesDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	s := &Stores{DB: db}
	s.Close()

	assert.Nil(t, s.DB)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseNil(t *testing.T) {
	var s *Stores
	s.Close() // must not panic
}

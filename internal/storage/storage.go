// Package storage owns the optional external store handles. Nothing in the
// validation request path reads from them today; they are reserved for a
// future result cache and audit log. They are opened once at startup,
// injected where needed, and closed during shutdown — never package-level
// singletons.
package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/email-validator/internal/config"
)

// Stores bundles the process-lifetime external store handles.
// Either handle may be nil when the corresponding store is not configured
// or unreachable; callers must treat nil as "not available".
type Stores struct {
	DB    *sql.DB
	Redis *redis.Client
}

// Open initializes whichever stores are configured. A store left
// unconfigured, or one that fails its startup ping, is logged and skipped
// rather than failing startup: the service is fully functional without them.
func Open(ctx context.Context, cfg config.StorageConfig) *Stores {
	s := &Stores{}

	if cfg.DatabaseURL == "" {
		log.Println("[storage] database not configured (DATABASE_URL not set)")
	} else {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Printf("[storage] Warning: database open failed: %v", err)
		} else {
			db.SetMaxOpenConns(10)
			db.SetMaxIdleConns(3)
			db.SetConnMaxLifetime(5 * time.Minute)

			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := db.PingContext(pingCtx)
			cancel()
			if err != nil {
				log.Printf("[storage] Warning: database ping failed: %v — continuing without it", err)
				db.Close()
			} else {
				s.DB = db
				log.Println("[storage] database connected")
			}
		}
	}

	if cfg.RedisURL == "" {
		log.Println("[storage] redis not configured (REDIS_URL not set)")
	} else {
		opts, err := redis.ParseURL(cfg.RedisURL)
		var client *redis.Client
		if err != nil {
			// Tolerate bare host:port addresses
			client = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		} else {
			client = redis.NewClient(opts)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Printf("[storage] Warning: redis ping failed (%s): %v — continuing without it", cfg.RedisURL, err)
			client.Close()
		} else {
			s.Redis = client
			log.Printf("[storage] redis connected: %s", cfg.RedisURL)
		}
	}

	return s
}

// Close releases whichever handles are open. Safe to call on a zero Stores.
func (s *Stores) Close() {
	if s == nil {
		return
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Printf("[storage] database close: %v", err)
		}
		s.DB = nil
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("[storage] redis close: %v", err)
		}
		s.Redis = nil
	}
}

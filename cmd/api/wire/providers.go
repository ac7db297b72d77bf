package wire

import (
	"os"
	"sync"

	"atlas-cms/cmd/config"
	authhttpapi "atlas-cms/internal/auth/httpapi"
	"atlas-cms/internal/auth/security"
	"atlas-cms/internal/infra/cache"
	"atlas-cms/internal/infra/httpserver"
	"atlas-cms/internal/infra/sql"
	"atlas-cms/internal/media/storage"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM

	cacheOnce     sync.Once
	cacheInstance cache.Cache
)

// provideDatabase hands every injector the same ORM so migrations run once
// and the in-memory database is shared when ENV=local.
func provideDatabase(cfg config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		env, ok := os.LookupEnv("ENV")
		if !ok {
			env = "production"
		}

		if env == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}

			databaseInstance = orm
			return
		}

		orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN, cfg.Postgresql.Timeout)
		if err != nil {
			panic(err)
		}

		databaseInstance = orm
	})

	return databaseInstance
}

func provideStatsDatabase(cfg config.AppConfig) sql.Database {
	db := sql.NewPosgreDatabase(cfg.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	return db
}

// provideCache is a singleton: session revocations written by the auth
// controller must be visible to every guard instance.
func provideCache(cfg config.AppConfig) cache.Cache {
	cacheOnce.Do(func() {
		if cfg.Redis.Addr != "" {
			store, err := cache.NewRedisCache(&cache.RedisConfig{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				panic(err)
			}

			cacheInstance = store
			return
		}

		store, err := cache.New(nil)
		if err != nil {
			panic(err)
		}

		cacheInstance = store
	})

	return cacheInstance
}

func provideTokenService(cfg config.AppConfig) *security.TokenService {
	tokens, err := security.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		panic(err)
	}

	return tokens
}

func provideBlobStore(cfg config.AppConfig) storage.BlobStore {
	blobs, err := storage.NewFilesystemBlobStore(cfg.Media.Root)
	if err != nil {
		panic(err)
	}

	return blobs
}

func provideMaxUploadBytes(cfg config.AppConfig) int64 {
	return cfg.Media.MaxUploadBytes
}

func provideLoginLimiter(cfg config.AppConfig, store cache.Cache) authhttpapi.Middleware {
	return httpserver.RateLimit(store, cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
}

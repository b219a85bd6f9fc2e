// README: Config loader with env defaults for HTTP, model artifacts, audit DB, cache, and static assets.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Models struct {
		Dir string
	}
	Static struct {
		Dir string
	}
	// DB is optional: an empty DSN disables the prediction audit log.
	DB struct {
		DSN string
	}
	// Cache is optional: an empty addr disables the Redis response cache.
	Cache struct {
		Addr       string
		TTLSeconds int
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FARECAST_HTTP_ADDR", ":8000")
	cfg.Models.Dir = envOrDefault("FARECAST_MODEL_DIR", "models")
	cfg.Static.Dir = envOrDefault("FARECAST_STATIC_DIR", "static")
	cfg.DB.DSN = envOrDefault("FARECAST_DB_DSN", "")
	cfg.Cache.Addr = envOrDefault("FARECAST_REDIS_ADDR", "")
	cfg.Cache.TTLSeconds = envOrDefaultInt("FARECAST_CACHE_TTL_SECONDS", 300)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

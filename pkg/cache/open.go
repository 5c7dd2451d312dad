package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	Dir     string // file backend
	Redis   RedisConfig
}

// Open constructs the configured backend. An empty backend means file.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: no directory configured")
		}
		return NewFileCache(opts.Dir)
	case BackendMemory:
		return NewMemoryCache(DefaultTTL, 0), nil
	case BackendRedis:
		return NewRedisCache(ctx, opts.Redis)
	case BackendNone, "off", "null":
		return NewNullCache(), nil
	}
	return nil, fmt.Errorf("%w %q (want file, memory, redis or none)", ErrUnknownBackend, opts.Backend)
}

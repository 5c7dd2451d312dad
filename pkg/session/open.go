package session

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
	BackendMongo  = "mongo"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	Dir     string
	Redis   RedisStoreConfig
	Mongo   MongoStoreConfig
}

// Open constructs the configured store. An empty backend means file.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		return NewFileStore(opts.Dir)
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(ctx, opts.Redis)
	case BackendMongo, "mongodb":
		return NewMongoStore(ctx, opts.Mongo)
	}
	return nil, fmt.Errorf("unknown session backend %q (want file, memory, redis or mongo)", opts.Backend)
}

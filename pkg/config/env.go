package config

import (
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PROOFGEN_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from PROOFGEN_* variables. Values that fail to
// parse are ignored.
//
//	PROOFGEN_WIDTH, PROOFGEN_HEIGHT, PROOFGEN_FORMATS (comma separated),
//	PROOFGEN_PROMPT_STYLE, PROOFGEN_CACHE, PROOFGEN_CACHE_DIR,
//	PROOFGEN_CACHE_TTL, PROOFGEN_REDIS_ADDR, PROOFGEN_REDIS_PASSWORD,
//	PROOFGEN_REDIS_DB, PROOFGEN_ADDR, PROOFGEN_RATE_LIMIT,
//	PROOFGEN_SESSION, PROOFGEN_SESSION_DIR, PROOFGEN_MONGO_URI,
//	PROOFGEN_MONGO_DATABASE
func (c *Config) ApplyEnv(lookup LookupFunc) {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			}
		}
	}
	dur := func(name string, dst *Duration) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
				dst.Duration = d
			}
		}
	}

	num("WIDTH", &c.Render.Width)
	num("HEIGHT", &c.Render.Height)
	if v, ok := lookup(EnvPrefix + "FORMATS"); ok && v != "" {
		c.Render.Formats = splitList(v)
	}
	str("PROMPT_STYLE", &c.Render.PromptStyle)

	str("CACHE", &c.Cache.Backend)
	str("CACHE_DIR", &c.Cache.Dir)
	dur("CACHE_TTL", &c.Cache.TTL)

	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	num("REDIS_DB", &c.Redis.DB)

	str("ADDR", &c.Server.Addr)
	if v, ok := lookup(EnvPrefix + "SERVER_FORMATS"); ok && v != "" {
		c.Server.Formats = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "RATE_LIMIT"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			c.Server.RateLimit = f
		}
	}

	str("SESSION", &c.Session.Backend)
	str("SESSION_DIR", &c.Session.Dir)
	str("MONGO_URI", &c.Mongo.URI)
	str("MONGO_DATABASE", &c.Mongo.Database)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

// exerciseCache runs the behavior every backend must share.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "artifact:a", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:a")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "artifact:a", []byte("v2"), 0); err != nil {
		t.Fatal(err)
	}
	if data, _, _ := c.Get(ctx, "artifact:a"); string(data) != "v2" {
		t.Errorf("overwrite not visible: %q", data)
	}

	if err := c.Delete(ctx, "artifact:a"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:a"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "artifact:a"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}

	if cl, ok := c.(Clearer); ok {
		_ = c.Set(ctx, "x", []byte("1"), 0)
		_ = c.Set(ctx, "y", []byte("2"), 0)
		if err := cl.Clear(ctx); err != nil {
			t.Fatalf("Clear error: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "x"); hit {
			t.Error("entry survived Clear")
		}
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	exerciseCache(t, c)
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	_ = c.Set(ctx, "k", []byte("v"), time.Nanosecond)
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
	if n, _, _ := c.Stats(); n != 0 {
		t.Errorf("expired entry not removed, %d left", n)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)

	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheStats(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("22"), 0)

	n, size, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || size == 0 {
		t.Errorf("Stats() = %d entries, %d bytes", n, size)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Hour, time.Minute)
	exerciseCache(t, c)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 0)
	_ = c.Set(ctx, "k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("PROOFGEN_TEST_REDIS")
	if addr == "" {
		t.Skip("PROOFGEN_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr, Prefix: "proofgen:test:"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		backend string
		check   func(Cache) bool
	}{
		{"", func(c Cache) bool { _, ok := c.(*FileCache); return ok }},
		{"file", func(c Cache) bool { _, ok := c.(*FileCache); return ok }},
		{"MEMORY", func(c Cache) bool { _, ok := c.(*MemoryCache); return ok }},
		{"none", func(c Cache) bool { _, ok := c.(NullCache); return ok }},
	}
	for _, tt := range tests {
		c, err := Open(ctx, Options{Backend: tt.backend, Dir: t.TempDir()})
		if err != nil {
			t.Errorf("Open(%q) error: %v", tt.backend, err)
			continue
		}
		if !tt.check(c) {
			t.Errorf("Open(%q) = %T", tt.backend, c)
		}
	}

	if _, err := Open(ctx, Options{Backend: "s3"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(s3) error = %v", err)
	}
	if _, err := Open(ctx, Options{Backend: "file"}); err == nil {
		t.Error("file backend without a directory accepted")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	in := InputHash("lead", "x")

	svg := k.ArtifactKey(in, ArtifactKeyOpts{Format: "svg", Width: 1200, Height: 675})
	if svg != k.ArtifactKey(in, ArtifactKeyOpts{Format: "SVG", Width: 1200, Height: 675}) {
		t.Error("format case should not change the key")
	}
	if svg == k.ArtifactKey(in, ArtifactKeyOpts{Format: "png", Width: 1200, Height: 675}) {
		t.Error("different formats should produce different keys")
	}
	if svg == k.ArtifactKey(InputHash("lead", "y"), ArtifactKeyOpts{Format: "svg", Width: 1200, Height: 675}) {
		t.Error("different inputs should produce different keys")
	}
	if !strings.HasPrefix(svg, "artifact:") {
		t.Errorf("ArtifactKey = %q", svg)
	}

	b1 := k.BundleKey(in, BundleKeyOpts{PromptStyle: "canonical"})
	b2 := k.BundleKey(in, BundleKeyOpts{PromptStyle: "locked"})
	if b1 == b2 || !strings.HasPrefix(b1, "bundle:") {
		t.Errorf("BundleKey = %q, %q", b1, b2)
	}
}

func TestInputHashSeparatesFields(t *testing.T) {
	if InputHash("ab", "c") == InputHash("a", "bc") {
		t.Error("field boundary not part of the hash")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "tenant:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if key != "tenant:"+NewDefaultKeyer().ArtifactKey("h", ArtifactKeyOpts{Format: "svg"}) {
		t.Errorf("ScopedKeyer ArtifactKey = %q", key)
	}
	if !strings.HasPrefix(scoped.BundleKey("h", BundleKeyOpts{}), "tenant:bundle:") {
		t.Error("BundleKey not scoped")
	}
}

func TestKeyType(t *testing.T) {
	tests := map[string]string{
		"artifact:abc":                 "artifact",
		"tenant:bundle:abc":            "bundle",
		"proofgen:staging:artifact:ff": "artifact",
		"plain":                        "plain",
	}
	for key, want := range tests {
		if got := KeyType(key); got != want {
			t.Errorf("KeyType(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("wrapped error should unwrap to ErrNetwork")
	}
	if IsRetryable(ErrUnknownBackend) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx := context.Background()

	calls := 0
	if err := RetryWithBackoff(ctx, func() error { calls++; return nil }); err != nil || calls != 1 {
		t.Errorf("success: err=%v calls=%d", err, calls)
	}

	calls = 0
	err := RetryWithBackoff(ctx, func() error { calls++; return ErrUnknownBackend })
	if err != ErrUnknownBackend || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error { calls++; return Retryable(ErrNetwork) })
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

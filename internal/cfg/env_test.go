package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cfg = Config{}
	loaded = false
}

func TestGet_Defaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	c := Get()

	assert.Equal(t, 5*time.Second, c.Cache.TTL)
	assert.Equal(t, "localhost:6379", c.Cache.CacheAddr)
	assert.True(t, c.Cache.L2Enabled)
	assert.Equal(t, time.Hour, c.Cache.L2TTL)
	assert.Equal(t, SourcePokeAPI, c.Fetcher.Source)
	assert.Equal(t, 10*time.Second, c.Fetcher.Timeout)
	assert.Equal(t, time.Duration(0), c.Fetcher.Delay)
	assert.Equal(t, 1024, c.Session.Max)
	assert.Equal(t, 30*time.Minute, c.Session.IdleTTL)
	assert.Equal(t, ":8080", c.ApiPort)
	assert.Equal(t, 10, c.Worker.Concurrency)
}

func TestGet_FromEnv(t *testing.T) {
	reset()
	t.Cleanup(reset)

	t.Setenv("CACHE_TTL", "1500ms")
	t.Setenv("FETCHER_SOURCE", SourceMongo)
	t.Setenv("SESSION_MAX", "8")

	c := Get()

	assert.Equal(t, 1500*time.Millisecond, c.Cache.TTL)
	assert.Equal(t, SourceMongo, c.Fetcher.Source)
	assert.Equal(t, 8, c.Session.Max)
}

func TestGet_MalformedPanics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	t.Setenv("CACHE_TTL", "five seconds")

	assert.Panics(t, func() { Get() })
}

func TestLoad_YAML(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_port: \":9090\"\ncache:\n  ttl: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, c.Cache.TTL)
	assert.Equal(t, ":9090", c.ApiPort)
	assert.Equal(t, c, Get())
}

func TestSetConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	SetConfig(Config{ApiPort: ":1"})
	assert.Equal(t, ":1", Get().ApiPort)
}

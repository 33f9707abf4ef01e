package settings_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/utilities_go/internal/testlog"
	"github.com/on-the-ground/utilities_go/settings"
)

var sample = map[string]string{
	"retries":          "3",
	"retries.bad":      "three",
	"verbose":          "true",
	"verbose.bad":      "maybe",
	"empty":            "",
	"started":          "2024-03-01T10:00:00Z",
	"started.bad":      "yesterday",
	"timeout":          "1m30s",
	"hosts":            " a.example, b.example ,, ",
	"cache.size":       "128",
	"cache.ttl":        "10s",
	"cache.listen":     "127.0.0.1",
	"cache.tags":       "x,y",
	"cache.evict-lazy": "1",
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cache.ttl", settings.Key("cache", "ttl"))
	assert.Equal(t, "a.b.c", settings.Key("a", "", "b", "c"))
	assert.Equal(t, "", settings.Key())
}

func TestInt(t *testing.T) {
	s := settings.New(sample)

	v, err := s.Int("retries")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = s.Int("retries.bad")
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)

	_, err = s.Int("empty")
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)

	_, err = s.Int("absent")
	assert.ErrorIs(t, err, settings.ErrMissingEntry)
	assert.EqualError(t, err, `missing entry: "absent"`)
}

func TestOrVariants(t *testing.T) {
	logger, logs := testlog.Observed(zapcore.WarnLevel)
	s := settings.New(sample, settings.WithLogger(logger))

	assert.Equal(t, 3, s.IntOr("retries", 7))
	assert.Equal(t, 7, s.IntOr("absent", 7))
	assert.Equal(t, 0, logs.Len())

	assert.Equal(t, 7, s.IntOr("retries.bad", 7))
	assert.True(t, s.BoolOr("verbose.bad", true))
	assert.False(t, s.BoolOr("empty", false))
	assert.Equal(t, time.Second, s.DurationOr("retries.bad", time.Second))

	entries := logs.FilterMessage("using default for malformed entry").All()
	require.Len(t, entries, 4)
	assert.Equal(t, "retries.bad", entries[0].ContextMap()["key"])
	assert.Equal(t, "verbose.bad", entries[1].ContextMap()["key"])
}

func TestBool(t *testing.T) {
	s := settings.New(map[string]string{"on": "true", "off": "0", "bad": "maybe"})

	v, err := s.Bool("on")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = s.Bool("off")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = s.Bool("bad")
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)
}

func TestTime(t *testing.T) {
	s := settings.New(sample)

	v, err := s.Time("started")
	require.NoError(t, err)
	assert.True(t, v.Equal(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)))

	_, ok := s.TimeOk("started.bad")
	assert.False(t, ok)
	_, ok = s.TimeOk("absent")
	assert.False(t, ok)
	v, ok = s.TimeOk("started")
	assert.True(t, ok)
	assert.Equal(t, 2024, v.Year())
}

func TestDuration(t *testing.T) {
	s := settings.New(sample)

	v, err := s.Duration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, v)

	_, err = s.Duration("retries")
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)
}

func TestCSV(t *testing.T) {
	s := settings.New(sample)
	assert.Equal(t, []string{"a.example", "b.example"}, s.CSV("hosts"))
	assert.Nil(t, s.CSV("absent"))
}

func TestRequire(t *testing.T) {
	s := settings.New(sample)
	require.NoError(t, s.Require("retries", "cache.size"))

	err := s.Require("retries", "user", "password")
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.ErrorIs(t, e, settings.ErrMissingEntry)
	}
	assert.Contains(t, err.Error(), `"user"`)
	assert.Contains(t, err.Error(), `"password"`)
}

func TestSub(t *testing.T) {
	s := settings.New(sample)
	cache := s.Sub("cache")

	assert.Equal(t, 5, cache.Len())
	v, err := cache.Int("size")
	require.NoError(t, err)
	assert.Equal(t, 128, v)

	raw, ok := cache.Raw("evict-lazy")
	assert.True(t, ok)
	assert.Equal(t, "1", raw)

	assert.Equal(t, cache.Len(), s.Sub("cache.").Len())
	assert.Equal(t, 0, s.Sub("nothing").Len())
}

func TestNew_CopiesValues(t *testing.T) {
	values := map[string]string{"a": "1"}
	s := settings.New(values)
	values["a"] = "2"

	v, err := s.Int("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	var zero settings.Settings
	assert.Equal(t, 5, zero.IntOr("a", 5))
}

type cacheConfig struct {
	Size      int
	TTL       time.Duration
	Listen    netip.Addr
	Tags      []string
	EvictLazy bool
}

func TestDecode(t *testing.T) {
	var got cacheConfig
	require.NoError(t, settings.New(sample).Sub("cache").Decode(&got))

	want := cacheConfig{
		Size:      128,
		TTL:       10 * time.Second,
		Listen:    netip.MustParseAddr("127.0.0.1"),
		Tags:      []string{"x", "y"},
		EvictLazy: true,
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
		t.Fatalf("Decode() (-want, +got):\n%s", diff)
	}
}

func TestDecode_Nested(t *testing.T) {
	type config struct {
		Name  string
		Cache struct {
			Size int
			TTL  time.Duration
		}
	}
	s := settings.New(map[string]string{
		"name":       "edge",
		"cache.size": "64",
		"cache.ttl":  "1h",
	})

	var got config
	require.NoError(t, s.Decode(&got))
	assert.Equal(t, "edge", got.Name)
	assert.Equal(t, 64, got.Cache.Size)
	assert.Equal(t, time.Hour, got.Cache.TTL)
}

func TestDecode_Errors(t *testing.T) {
	var out struct{ Size int }

	err := settings.New(map[string]string{"size": "big"}).Decode(&out)
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)

	err = settings.New(map[string]string{"size": "1", "size.max": "2"}).Decode(&out)
	assert.ErrorIs(t, err, settings.ErrMalformedEntry)
	assert.Contains(t, err.Error(), `"size.max"`)
}

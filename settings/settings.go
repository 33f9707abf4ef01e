// Package settings reads typed values out of flat string configuration, such
// as environment-derived or INI-style key/value collections.
//
// Keys are dotted paths ("cache.ttl"). Values are parsed on demand: getters
// without a default report ErrMissingEntry or ErrMalformedEntry, while the
// *Or variants fall back to the default and log a warning when a present
// value cannot be parsed.
package settings

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/utilities_go/pure/strs"
)

var (
	ErrMissingEntry   = errors.New("missing entry")
	ErrMalformedEntry = errors.New("malformed entry")
)

type Option func(*Settings)

// WithLogger sets the logger warned when a default replaces a malformed
// value. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Settings is an immutable view over key/value entries. The zero value holds
// no entries.
type Settings struct {
	values map[string]string
	logger *zap.Logger
}

// New copies values into a Settings.
func New(values map[string]string, opts ...Option) Settings {
	s := Settings{
		values: maps.Clone(values),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Settings) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// Len returns the number of entries.
func (s Settings) Len() int {
	return len(s.values)
}

// Sub returns the entries under prefix, with the prefix removed from their
// keys.
func (s Settings) Sub(prefix string) Settings {
	prefix = strings.TrimSuffix(prefix, delimiter)
	sub := Settings{
		values: make(map[string]string),
		logger: s.log().With(zap.String("prefix", prefix)),
	}
	for k, v := range s.values {
		if rest, ok := strings.CutPrefix(k, prefix+delimiter); ok && rest != "" {
			sub.values[rest] = v
		}
	}
	return sub
}

// Raw returns the unparsed value for key.
func (s Settings) Raw(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Require reports every key in keys that has no entry.
func (s Settings) Require(keys ...string) error {
	var err error
	for _, k := range keys {
		if _, ok := s.values[k]; !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrMissingEntry, k))
		}
	}
	return err
}

func (s Settings) Int(key string) (int, error) {
	return get[int](s, key)
}

func (s Settings) IntOr(key string, def int) int {
	return getOr(s, key, def)
}

func (s Settings) Bool(key string) (bool, error) {
	return get[bool](s, key)
}

func (s Settings) BoolOr(key string, def bool) bool {
	return getOr(s, key, def)
}

// Time parses an RFC 3339 timestamp.
func (s Settings) Time(key string) (time.Time, error) {
	return get[time.Time](s, key)
}

// TimeOk is Time reporting only success.
func (s Settings) TimeOk(key string) (time.Time, bool) {
	t, err := s.Time(key)
	return t, err == nil
}

// Duration parses a time.ParseDuration string.
func (s Settings) Duration(key string) (time.Duration, error) {
	return get[time.Duration](s, key)
}

func (s Settings) DurationOr(key string, def time.Duration) time.Duration {
	return getOr(s, key, def)
}

// CSV splits a comma-separated value, trimming fields and dropping empty
// ones. A missing key gives nil.
func (s Settings) CSV(key string) []string {
	return strs.Split(s.values[key], ",")
}

func get[T any](s Settings, key string) (T, error) {
	var zero T
	raw, ok := s.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissingEntry, key)
	}
	v, err := parse[T](raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %v", ErrMalformedEntry, key, err)
	}
	return v, nil
}

func getOr[T any](s Settings, key string, def T) T {
	v, err := get[T](s, key)
	switch {
	case err == nil:
		return v
	case errors.Is(err, ErrMalformedEntry):
		s.log().Warn("using default for malformed entry",
			zap.String("key", key),
			zap.Any("default", def),
			zap.Error(err),
		)
	}
	return def
}

func parse[T any](raw string) (T, error) {
	var out T
	if strings.TrimSpace(raw) == "" {
		return out, errors.New("empty value")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return out, err
	}
	err = dec.Decode(strings.TrimSpace(raw))
	return out, err
}

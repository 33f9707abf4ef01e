package settings

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
)

// Decode decodes every entry into out, a pointer to a struct or map. Dotted
// keys become nested structures. Field names match keys case-insensitively
// and ignoring dashes. Strings convert to durations, RFC 3339 times,
// encoding.TextUnmarshaler values and comma-separated slices.
func (s Settings) Decode(out any) error {
	tree, err := s.tree()
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(decoderConfig(out))
	if err != nil {
		return err
	}
	if err := dec.Decode(tree); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return nil
}

func decoderConfig(out any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		MatchName:        matchName,
		DecodeHook: protectedDecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToTimeHookFunc(time.RFC3339),
				mapstructure.StringToSliceHookFunc(","),
			),
		),
	}
}

func protectedDecodeHook(hook mapstructure.DecodeHookFunc) mapstructure.DecodeHookFunc {
	return func(from, to reflect.Value) (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				v = nil
				err = fmt.Errorf("internal error while parsing: %v", r)
			}
		}()
		return mapstructure.DecodeHookExec(hook, from, to)
	}
}

func matchName(mapKey, fieldName string) bool {
	key := strings.ToLower(strings.ReplaceAll(mapKey, "-", ""))
	return key == strings.ToLower(fieldName)
}

// tree nests dotted keys. A key that is both a value and a parent of other
// keys is malformed.
func (s Settings) tree() (map[string]any, error) {
	root := make(map[string]any)
	var errs error
	for _, key := range slices.Sorted(maps.Keys(s.values)) {
		parts := strings.Split(key, delimiter)
		node := root
		ok := true
		for _, p := range parts[:len(parts)-1] {
			switch child := node[p].(type) {
			case nil:
				next := make(map[string]any)
				node[p] = next
				node = next
			case map[string]any:
				node = child
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		leaf := parts[len(parts)-1]
		if _, taken := node[leaf]; !ok || taken {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q conflicts with a nested key", ErrMalformedEntry, key))
			continue
		}
		node[leaf] = s.values[key]
	}
	return root, errs
}

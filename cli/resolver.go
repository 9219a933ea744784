package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/spiral/log"
	"github.com/ardnew/spiral/pkg"
)

// resolve returns a [kong.ConfigurationLoader] that reads YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.yaml")
//
// The document is a mapping from flag name to value. When the mapping has a
// key equal to name whose value is itself a mapping, only that mapping is
// used. Nested mappings are flattened by joining keys with hyphens, so both
// of these set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Flag names with hyphens may also be written with underscores. Numbers are
// passed to Kong as strings; lists become repeated values.
//
// Command-line flags override config file values.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, pkg.ErrReadInput.Wrap(err)
		}

		if len(bytes.TrimSpace(data)) == 0 {
			return config{}, nil
		}

		var doc any
		if err := yaml.UnmarshalContext(ctx, data, &doc); err != nil {
			return nil, pkg.ErrReadInput.Wrap(err)
		}

		if doc == nil {
			return config{}, nil
		}

		root, ok := doc.(map[string]any)
		if !ok {
			return nil, pkg.ErrInvalidFormat.Wrapf("expected mapping, got %T", doc)
		}

		if scoped, ok := root[name].(map[string]any); ok {
			root = scoped
		}

		cfg := make(config)
		cfg.flatten("", root)

		log.TraceContext(ctx, "configuration loaded",
			slog.String("scope", name),
			slog.Int("keys", len(cfg)))

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// flatten stores every leaf of m under its hyphen-joined key path.
func (r config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if nested, ok := value.(map[string]any); ok {
			r.flatten(key, nested)

			continue
		}

		r[key] = flagValue(value)
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
		if value, ok := r[key]; ok {
			return value, nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value to a form Kong can parse. Kong
// requires numbers as strings for parsing.
func flagValue(value any) any {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		list := make([]any, len(v))
		for i, elem := range v {
			list[i] = flagValue(elem)
		}

		return list
	default:
		return v
	}
}

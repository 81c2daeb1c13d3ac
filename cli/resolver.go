package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys are flag names. Hyphens may be written as underscores, and the part
// of a name before its first hyphen may be a nested mapping:
//
//	log:
//	  level: debug
//	log_format: json
//	env-file: ~/.minigrep.env
//
// An empty file yields no values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if values == nil {
		return resolver{}, nil
	}

	return resolver(values), nil
}

// resolver implements [kong.Resolver] over decoded configuration values.
type resolver map[string]any

// Validate implements [kong.Resolver].
func (r resolver) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r resolver) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	v, ok := r.lookup(flag.Name)
	if !ok {
		return nil, nil
	}

	return scalar(v), nil
}

func (r resolver) lookup(name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if v, ok := r[key]; ok {
			return v, true
		}
	}

	group, rest, ok := strings.Cut(name, "-")
	if !ok {
		return nil, false
	}

	for _, key := range []string{group, strings.ReplaceAll(group, "-", "_")} {
		if nested, ok := r[key].(map[string]any); ok {
			return resolver(nested).lookup(rest)
		}
	}

	return nil, false
}

// scalar converts numbers to strings, which kong parses like command-line
// input.
func scalar(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return v
	}
}

package grep

import (
	"iter"
	"log/slog"
)

// IgnoreCaseEnv is the environment variable that forces case-insensitive
// search when set to [IgnoreCaseEnabled].
const IgnoreCaseEnv = "IGNORE_CASE"

// IgnoreCaseEnabled is the only value of [IgnoreCaseEnv] that enables
// case-insensitive search. Any other value, including the empty string,
// defers to the positional argument.
const IgnoreCaseEnabled = "1"

// IgnoreCaseArg is the literal positional argument that enables
// case-insensitive search.
const IgnoreCaseArg = "true"

// Argument names reported by [ErrMissingArgument].
const (
	ArgQuery    = "query"
	ArgFilePath = "file_path"
)

// Env looks up an environment variable, with the same contract as
// [os.LookupEnv].
type Env func(key string) (value string, ok bool)

// Config holds the inputs of a single search.
// The zero value is not valid; use [Build].
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

// Query returns the text searched for.
func (c Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c Config) FilePath() string { return c.filePath }

// IgnoreCase reports whether the search is case-insensitive.
func (c Config) IgnoreCase() bool { return c.ignoreCase }

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("query", c.query),
		slog.String("file", c.filePath),
		slog.Bool("ignore_case", c.ignoreCase),
	)
}

// Build creates a Config from command-line tokens.
//
// The first token is the program name and is skipped. The next two are the
// query and the file path; a missing or empty token fails with
// [ErrMissingArgument]. Search is case-insensitive when env reports
// [IgnoreCaseEnv] set to [IgnoreCaseEnabled], or else when the third token
// equals [IgnoreCaseArg]. Remaining tokens are ignored. A nil env disables
// the environment override.
//
// Build performs no I/O.
func Build(args iter.Seq[string], env Env) (Config, error) {
	next, stop := iter.Pull(args)
	defer stop()

	// program name
	next()

	var cfg Config

	query, ok := next()
	if !ok || query == "" {
		return Config{}, missingArgument(ArgQuery)
	}

	filePath, ok := next()
	if !ok || filePath == "" {
		return Config{}, missingArgument(ArgFilePath)
	}

	cfg.query = query
	cfg.filePath = filePath

	if env != nil {
		if v, ok := env(IgnoreCaseEnv); ok && v == IgnoreCaseEnabled {
			cfg.ignoreCase = true

			return cfg, nil
		}
	}

	if flag, ok := next(); ok {
		cfg.ignoreCase = flag == IgnoreCaseArg
	}

	return cfg, nil
}

func missingArgument(name string) *Error {
	return ErrMissingArgument.
		Wrap(argumentError(name)).
		With(slog.String("argument", name))
}

// argumentError names an absent argument.
type argumentError string

func (a argumentError) Error() string { return string(a) }

package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ardnew/minigrep/grep"
	"github.com/ardnew/minigrep/log"
)

// ErrEnvFile is returned when the --env-file cannot be read.
var ErrEnvFile = grep.NewError("failed to read environment file")

type envConfig struct {
	File string `help:"Read ${ignoreCaseEnv} from a dotenv file when unset in the environment." placeholder:"PATH" type:"path"`
}

func (*envConfig) vars() kong.Vars {
	return kong.Vars{"ignoreCaseEnv": grep.IgnoreCaseEnv}
}

func (*envConfig) group() kong.Group {
	return kong.Group{Key: "env", Title: "Environment options"}
}

// lookup returns base extended with the variables of the configured
// dotenv file. Variables set in base take precedence.
func (e *envConfig) lookup(ctx context.Context, base grep.Env) (grep.Env, error) {
	if e.File == "" {
		return base, nil
	}

	vars, err := godotenv.Read(e.File)
	if err != nil {
		return nil, ErrEnvFile.
			With(slog.String("file", e.File)).
			Wrap(err)
	}

	log.DebugContext(ctx, "read environment file",
		slog.String("file", e.File),
		slog.Int("vars", len(vars)),
	)

	return func(key string) (string, bool) {
		if base != nil {
			if v, ok := base(key); ok {
				return v, true
			}
		}

		v, ok := vars[key]

		return v, ok
	}, nil
}

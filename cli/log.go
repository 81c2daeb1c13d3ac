package cli

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/ardnew/minigrep/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so that kong's own errors use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"         enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"         enum:"text,json"                   help:"Set log format."`
	TimeLayout string    `default:"none"                                            help:"Set timestamp layout."`
	Caller     bool      `default:"false"                                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"${logPretty}"                                    help:"Enable colorized pretty printing." negatable:""`
}

// stderrIsTerminal reports whether log output goes to a terminal.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logPretty": strconv.FormatBool(stderrIsTerminal()),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// reset restores the flag defaults and applies them to the default logger.
// Values given on the command line or in configuration files are applied
// later by scan, UnmarshalText and start.
func (f *logConfig) reset() {
	*f = logConfig{
		Level:      "info",
		Format:     "text",
		TimeLayout: "none",
		Pretty:     stderrIsTerminal(),
	}

	f.apply()
}

func (f *logConfig) apply() {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)
}

// start applies the parsed logger configuration.
func (f *logConfig) start(ctx context.Context) {
	f.apply()

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them.
//
// Level and format are also applied by their UnmarshalText methods when kong
// reaches them, but boolean flags and flags after an invalid argument are
// only seen here. Scanning stops at "--".
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		negate := strings.HasPrefix(arg, "--no-log-")

		var name string

		switch {
		case negate:
			name = strings.TrimPrefix(arg, "--no-log-")
		case strings.HasPrefix(arg, "--log-"):
			name = strings.TrimPrefix(arg, "--log-")
		default:
			continue
		}

		name, value, assigned := strings.Cut(name, "=")

		// value of a non-boolean flag given as a separate argument
		operand := func() string {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		// value of a boolean flag, which is only ever given with "="
		boolean := func() (bool, bool) {
			v := true

			if assigned {
				var err error
				if v, err = strconv.ParseBool(value); err != nil {
					return false, false
				}
			}

			return v != negate, true
		}

		switch name {
		case "level":
			if !negate {
				_ = f.Level.UnmarshalText([]byte(operand()))
			}

		case "format":
			if !negate {
				_ = f.Format.UnmarshalText([]byte(operand()))
			}

		case "time-layout":
			if !negate {
				f.TimeLayout = operand()
				log.Config(log.WithTimeLayout(f.TimeLayout))
			}

		case "pretty":
			if v, ok := boolean(); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case "caller":
			if v, ok := boolean(); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}

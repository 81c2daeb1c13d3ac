package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/minigrep/cli/cmd"
	"github.com/ardnew/minigrep/grep"
	"github.com/ardnew/minigrep/pkg"
)

// CLI is the top-level command-line interface for minigrep.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Env   envConfig   `embed:"" group:"env"   prefix:"env-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit"`

	cmd.Search `embed:""`
}

// configFiles returns the configuration files read for flag defaults, in
// increasing order of precedence.
var configFiles = func() []string {
	return []string{
		pkg.ConfigPath(configBase + ".json"),
		pkg.ConfigPath(configBase + ".yaml"),
	}
}

// configBase is the base name of the configuration files.
const configBase = "config"

// Run executes the minigrep CLI with the given context and arguments
// (excluding the program name). Matches are written to standard output and
// IGNORE_CASE is read from the process environment.
//
// The exit function is called by flags that terminate early (--help,
// --version).
func Run(ctx context.Context, exit func(code int), args ...string) error {
	return run(ctx, os.Stdout, os.LookupEnv, exit, args...)
}

func run(
	ctx context.Context,
	stdout io.Writer,
	env grep.Env,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.reset()

	vars := kong.Vars{"version": pkg.Name + " " + pkg.Version}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Env.vars()).
		CloneWith(cli.Pprof.vars())

	files := configFiles()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Env.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:   true,
				Summary:   true,
				FlagsLast: true,
			}),
		kong.Configuration(kong.JSON, files[0]),
		kong.Configuration(loadYAML, files[1]),
		vars,
	)
	if err != nil {
		return err
	}

	// Search arguments are positional only, even when they look like flags.
	args = separate(parser.Model, args)

	// Apply logger flags before kong parses anything, so errors reported
	// during parsing use the requested format.
	cli.Log.scan(args)

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	lookup, err := cli.Env.lookup(ctx, env)
	if err != nil {
		return err
	}

	ktx.BindTo(ctx, (*context.Context)(nil))
	ktx.BindTo(stdout, (*io.Writer)(nil))
	ktx.Bind(lookup)

	return ktx.Run()
}

package cmd

import (
	"context"
	"io"
	"slices"

	"github.com/ardnew/minigrep/grep"
	"github.com/ardnew/minigrep/pkg"
)

// Search prints the lines of a file that contain a query.
//
// The arguments are all optional to kong so that [grep.Build] alone decides
// which are missing.
type Search struct {
	Query      string `arg:"" help:"Text to search for."                                 name:"query"       optional:""`
	FilePath   string `arg:"" help:"File to search."                                     name:"file_path"   optional:""`
	IgnoreCase string `arg:"" help:"Set to 'true' to ignore case (or ${ignoreCaseEnv}=1)." name:"ignore_case" optional:""`
}

// Tokens returns the command line as seen by [grep.Build]: the program name
// followed by the positional arguments up to the first one not given.
func (s *Search) Tokens() []string {
	tokens := []string{pkg.Name}

	for _, arg := range []string{s.Query, s.FilePath, s.IgnoreCase} {
		if arg == "" {
			break
		}

		tokens = append(tokens, arg)
	}

	return tokens
}

// Run executes the search, writing matching lines to out.
func (s *Search) Run(ctx context.Context, out io.Writer, env grep.Env) error {
	cfg, err := grep.Build(slices.Values(s.Tokens()), env)
	if err != nil {
		return err
	}

	return grep.Run(ctx, cfg, out)
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/minigrep/cli"
	"github.com/ardnew/minigrep/grep"
	"github.com/ardnew/minigrep/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			message(err),
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}

// message distinguishes invalid invocations from failures while searching.
func message(err error) string {
	var perr *kong.ParseError
	if errors.Is(err, grep.ErrMissingArgument) || errors.As(err, &perr) {
		return "problem parsing arguments"
	}

	return "application error"
}

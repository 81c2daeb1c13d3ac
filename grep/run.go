package grep

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/ardnew/minigrep/log"
)

// Run searches the file named by cfg and writes each matching line to w,
// followed by a newline, in file order.
//
// The file is read in full before searching. Failure to read it, or contents
// that are not valid UTF-8, yields [ErrReadFile] and nothing is written.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	log.DebugContext(ctx, "search start", slog.Any("config", cfg))

	contents, err := readFile(cfg.filePath)
	if err != nil {
		return err
	}

	result := cfg.Search(contents)

	out := bufio.NewWriter(w)

	for text := range result.All() {
		if _, err := out.WriteString(text); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		if err := out.WriteByte('\n'); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	if err := out.Flush(); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	log.DebugContext(ctx, "search done",
		slog.String("file", cfg.filePath),
		slog.Int("bytes", len(contents)),
		slog.Int("matches", result.Len()),
	)

	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrReadFile.
			With(slog.String("file", path)).
			Wrap(err)
	}

	if !utf8.Valid(data) {
		return "", ErrReadFile.
			With(slog.String("file", path)).
			Wrap(ErrInvalidEncoding)
	}

	return string(data), nil
}

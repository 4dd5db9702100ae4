package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
)

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// IOError reports a failure to read the searched file or to write results.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Run loads cfg.Path in one read, searches it and writes each matching line
// to out. Finding no matches is not an error.
func Run(cfg config.Config, out io.Writer) error {
	contents, err := readContents(cfg.Path)
	if err != nil {
		return err
	}
	var results []string
	if cfg.CaseSensitive {
		results = search.Search(cfg.Query, contents)
	} else {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	}
	logging.Debug(fmt.Sprintf("%s: %d matching lines (case-sensitive=%t)", cfg.Path, len(results), cfg.CaseSensitive))

	w := bufio.NewWriter(out)
	for _, line := range results {
		if _, err := w.WriteString(line); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func readContents(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &IOError{Op: "read", Path: path, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

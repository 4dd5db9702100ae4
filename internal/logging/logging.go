package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
)

var logfile *os.File
var verbose bool

// Stdout and Stderr are where user-facing messages go. Matched lines are not
// written through this package.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func init() { log.SetOutput(io.Discard) }

// Init mirrors every message into the file at path. An empty path disables
// the file log.
func Init(path string) error {
	Close()
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
		log.SetOutput(io.Discard)
	}
}

func Info(msg string) {
	_, _ = fmt.Fprintln(Stdout, msg)
	log.Println(msg)
}

func Success(msg string) {
	_, _ = fmt.Fprintln(Stdout, text.FgGreen.Sprint(msg))
	log.Println(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(Stderr, text.FgRed.Sprint(msg))
	log.Println("[ERROR] " + msg)
}

// SetVerbose toggles debug output on stderr.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled. It always reaches the file log.
func Debug(msg string) {
	log.Println("[DEBUG] " + msg)
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(Stderr, text.FgHiBlack.Sprint(msg))
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopak/minigrep/internal/app"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/spf13/cobra"
)

var cfgFile string
var verbose bool
var ignoreCase bool
var version = "dev"

// lookupEnv is read once per search, when the Config is built.
var lookupEnv = os.LookupEnv

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] <query> <filename>",
	Short: "Print the lines of a file that contain a query",
	Long: `Print every line of <filename> that contains <query>.

Matching is case-sensitive unless CASE_INSENSITIVE is set in the environment
(to any value), --ignore-case is given, or case_insensitive is enabled in the
settings file.`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New(append([]string{cmd.Root().Name()}, args...), lookupEnv)
		if err != nil {
			return err
		}
		if ignoreCase || config.Get().CaseInsensitive {
			cfg = cfg.IgnoringCase()
		}
		logging.Debug(fmt.Sprintf("search %q in %s (case-sensitive=%t)", cfg.Query, cfg.Path, cfg.CaseSensitive))
		return app.Run(cfg, cmd.OutOrStdout())
	},
}

func Execute() error { return rootCmd.Execute() }

// Describe renders err the way it is reported on stderr.
func Describe(err error) string {
	var ae *config.ArgumentError
	if errors.As(err, &ae) {
		return fmt.Sprintf("Problem parsing arguments: %v\nUsage: %s <query> <filename>", err, rootCmd.Name())
	}
	return "Application error: " + err.Error()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/minigrep); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug lines on stderr")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively (same as setting CASE_INSENSITIVE)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Version = version
}

// settingsDir is the directory settings are read from and written to.
func settingsDir() (string, error) {
	if cfgFile != "" {
		return filepath.Dir(cfgFile), nil
	}
	return config.DefaultDir()
}

func loadSettings(cmd *cobra.Command, args []string) error {
	dir, err := settingsDir()
	if err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	files, err := config.Discover(cfgFile, dir)
	if err != nil {
		return err
	}
	s, err := config.LoadFromFiles(files)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := logging.Init(s.LogFile); err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	logging.SetVerbose(verbose || s.Verbose)
	logging.Debug(fmt.Sprintf("loaded %d settings file(s)", len(files)))
	return nil
}

package cmd

import (
	"fmt"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/spf13/cobra"
)

var confirmOverwrite = func(path string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: fmt.Sprintf("Overwrite %s?", path), Default: false}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

var initForce bool

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		// Existing settings may be the reason for running init, so skip loading them.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetVerbose(verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := settingsDir()
			if err != nil {
				return err
			}
			p := filepath.Join(dir, assets.ConfigFileName)
			wrote, err := assets.WriteDefaultConfigIfMissing(dir)
			if err != nil {
				return err
			}
			if !wrote {
				if !initForce {
					ok, err := confirmOverwrite(p)
					if err != nil {
						return err
					}
					if !ok {
						logging.Info("kept existing " + p)
						return nil
					}
				}
				if err := assets.WriteDefaultConfig(dir); err != nil {
					return err
				}
			}
			logging.Success("wrote " + p)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file without prompting")
	rootCmd.AddCommand(cmd)
}

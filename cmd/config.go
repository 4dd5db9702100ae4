package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gopak/minigrep/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect settings",
	}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, envSet := lookupEnv(config.CaseInsensitiveEnv)
			return renderSettings(cmd.OutOrStdout(), config.Get(), envSet)
		},
	}
	configCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

func renderSettings(w io.Writer, s config.Settings, envSet bool) error {
	logFile := s.LogFile
	if logFile == "" {
		logFile = text.FgHiBlack.Sprint("-")
	}
	caseSource := "settings"
	if envSet {
		caseSource = config.CaseInsensitiveEnv
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Setting", "Value", "Source"})
	tw.AppendRow(table.Row{"case_insensitive", strconv.FormatBool(s.CaseInsensitive || envSet), caseSource})
	tw.AppendRow(table.Row{"log_file", logFile, "settings"})
	tw.AppendRow(table.Row{"verbose", strconv.FormatBool(s.Verbose), "settings"})
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

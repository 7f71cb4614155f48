package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"go.trai.ch/obtools/internal/app"
	"go.trai.ch/obtools/internal/core/domain"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the obfuscation settings of a project",
	}
	cmd.AddCommand(c.newSettingsShowCmd())
	cmd.AddCommand(c.newSettingsSetCmd())
	return cmd
}

func (c *CLI) newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the base obfuscation config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scope(cmd)
			if err != nil {
				return err
			}
			report, err := c.app.ShowSettings(cmd.Context(), s)
			if err != nil {
				return err
			}
			renderSettings(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func (c *CLI) newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change options or skipped namespaces of the base config",
		Example: `  obtools settings set --hide-strings=false --rename-properties
  obtools settings set --skip-namespace App.Models --skip-namespace App.Dto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			change := app.SettingsChange{Options: domain.Options{}}
			for _, opt := range domain.AllOptions() {
				name := optionFlag(opt)
				if !cmd.Flags().Changed(name) {
					continue
				}
				v, err := cmd.Flags().GetBool(name)
				if err != nil {
					return err
				}
				change.Options[opt] = v
			}

			if cmd.Flags().Changed("skip-namespace") {
				values, _ := cmd.Flags().GetStringSlice("skip-namespace")
				change.NamespacesToSkip = []string{}
				for _, ns := range values {
					if ns = strings.TrimSpace(ns); ns != "" {
						change.NamespacesToSkip = append(change.NamespacesToSkip, ns)
					}
				}
			}

			s, err := scope(cmd)
			if err != nil {
				return err
			}
			return c.app.SetSettings(cmd.Context(), s, change)
		},
	}

	defaults := domain.DefaultOptions()
	for _, opt := range domain.AllOptions() {
		cmd.Flags().Bool(optionFlag(opt), defaults[opt], fmt.Sprintf("Set the %s option", opt))
	}
	cmd.Flags().StringSlice("skip-namespace", nil, "Namespaces to leave untouched (replaces the list; pass \"\" to clear)")

	return cmd
}

// optionFlag turns an option name into its flag name, e.g. HideStrings into
// hide-strings.
func optionFlag(opt domain.Option) string {
	var b strings.Builder
	for i, r := range string(opt) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func renderSettings(w io.Writer, report *app.SettingsReport) {
	cfg := report.Config
	_, _ = fmt.Fprintf(w, "Base config: %s\n", report.Paths.BaseConfig)
	_, _ = fmt.Fprintf(w, "Executable:  %s\n", report.Paths.Executable)
	if cfg.Module != "" {
		_, _ = fmt.Fprintf(w, "Module:      %s\n", cfg.Module)
	}

	_, _ = fmt.Fprintln(w, "\nOptions:")
	for _, opt := range domain.AllOptions() {
		_, _ = fmt.Fprintf(w, "  %-20s %t\n", opt, cfg.Options.Get(opt))
	}

	if len(cfg.NamespacesToSkip) > 0 {
		_, _ = fmt.Fprintln(w, "\nSkipped namespaces:")
		for _, ns := range cfg.NamespacesToSkip {
			_, _ = fmt.Fprintf(w, "  %s\n", ns)
		}
	}

	if len(cfg.AssemblySearchPaths) > 0 {
		_, _ = fmt.Fprintln(w, "\nAssembly search paths:")
		for _, p := range cfg.AssemblySearchPaths {
			_, _ = fmt.Fprintf(w, "  %s\n", p)
		}
	}
}

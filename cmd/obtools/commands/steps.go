package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable [configuration|platform...]",
		Short: "Add the obfuscation step to configurations (all when none given)",
		Example: `  obtools enable
  obtools enable Release
  obtools enable "Release|Any CPU" "Release|x64"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope(cmd)
			if err != nil {
				return err
			}
			return c.app.Enable(cmd.Context(), s, args)
		},
	}
}

func (c *CLI) newDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable [configuration|platform...]",
		Short: "Remove the obfuscation step from configurations (all when none given)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope(cmd)
			if err != nil {
				return err
			}
			return c.app.Disable(cmd.Context(), s, args)
		},
	}
}

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a settings plan: options, per-configuration steps and base config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			s, err := scope(cmd)
			if err != nil {
				return err
			}
			return c.app.Apply(cmd.Context(), s, file)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Path to the settings plan (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

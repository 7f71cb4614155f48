package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/obtools/internal/app"
	"go.trai.ch/obtools/internal/ui/output"
	"go.trai.ch/obtools/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which configurations are obfuscated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scope(cmd)
			if err != nil {
				return err
			}
			report, err := c.app.Status(cmd.Context(), s)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func renderStatus(w io.Writer, report *app.StatusReport) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	header := r.NewStyle().Inherit(style.Header)
	muted := r.NewStyle().Inherit(style.Muted)
	enabled := r.NewStyle().Inherit(style.Enabled)
	disabled := r.NewStyle().Inherit(style.Disabled)

	_, _ = fmt.Fprintf(w, "%s %s\n", header.Render(report.Project.Name), muted.Render(report.Project.File))

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		state := style.Circle + " disabled"
		if row.Enabled {
			state = style.Dot + " enabled"
		}
		rows = append(rows, []string{row.Key.Configuration, row.Key.Platform, state})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(muted).
		Headers("CONFIGURATION", "PLATFORM", "OBFUSCATION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := r.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return cell.Inherit(header)
			case col == 2 && report.Rows[row].Enabled:
				return cell.Inherit(enabled)
			case col == 2:
				return cell.Inherit(disabled)
			default:
				return cell
			}
		})

	_, _ = fmt.Fprintln(w, t.Render())
}

package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var summaryTitleStyle = lipgloss.NewStyle().Bold(true)

// SimpleUI implements UI by writing to the command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints one row per module with its build/inputs/ignore
// list sizes.
func (s *SimpleUI) DisplaySummary(ctx context.Context, rows []ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", summaryTitleStyle.Render("Image build file dependencies"))
	s.printf("%s", renderSummaryTable(rows))

	return nil
}

func renderSummaryTable(rows []ModuleSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Build", "Inputs", "Ignore"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalInputs := 0

	for _, row := range rows {
		table.Append([]string{
			row.Module,
			strconv.Itoa(row.Build),
			strconv.Itoa(row.Inputs),
			strconv.Itoa(row.Ignore),
		})

		totalInputs += row.Inputs
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(rows)),
		"",
		strconv.Itoa(totalInputs),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...any) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jibfiles.dev/pkg/jibfiles/internal/domain"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List modules and their file report sizes",
		Long:  "List every module of the project with the size of its build, inputs and ignore lists.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Summary(context.Background(), domain.SummaryArgs{
				Descriptor: m.Path(viper.GetString(projectConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

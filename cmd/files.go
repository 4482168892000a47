package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jibfiles.dev/pkg/jibfiles/internal/domain"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

var filesModuleFlag string

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Print the sentinel-wrapped file report for a module",
		Long: `Compute which files affect the image build of the selected module (the
root module unless --module names a sub-module) and print them as JSON
wrapped in BEGIN JIB JSON / END JIB JSON marker lines.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Files(context.Background(), domain.FilesArgs{
				Descriptor: m.Path(viper.GetString(projectConfigKey)),
				Module:     viper.GetString(moduleConfigKey),
				Out:        cmd.OutOrStdout(),
			})
		},
	}

	configureFilesFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func configureFilesFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filesModuleFlag, moduleFlagName, "m", viper.GetString(moduleConfigKey), "target sub-module (defaults to the root module)")
	bindFlagToConfig(cmd.Flags().Lookup(moduleFlagName), moduleConfigKey)
}

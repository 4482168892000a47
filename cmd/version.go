package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the jibfiles version information",
		Long:  "Displays the jibfiles build version and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				fmt.Fprintln(out, "jibfiles version: unknown")
				return
			}

			fmt.Fprintf(out, "jibfiles version\t%s\n", info.Main.Version)
			fmt.Fprintf(out, "go version\t%s\n", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

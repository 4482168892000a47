package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const starterDescriptor = `# jibfiles project descriptor.
# Paths are relative to this file (module paths relative to the module dir).
root:
  name: app
  dir: .
  build: build.gradle
  resources:
    - src/main/resources
  sources:
    - src/main/java
  output: build
# settings: settings.gradle
# properties: gradle.properties
# modules:
#   - name: lib
#     dir: lib
#     build: build.gradle
#     sources:
#       - src/main/java
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a starter project descriptor",
		Long: `Create a jibfiles.yaml in the current working directory populated with a
single-module skeleton so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := viper.GetString(projectConfigKey)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("project descriptor %s already exists", targetPath)
			}

			if err := os.WriteFile(targetPath, []byte(starterDescriptor), 0o600); err != nil {
				return fmt.Errorf("failed to write project descriptor: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

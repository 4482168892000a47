// Package cmd provides the root command and CLI setup for jibfiles.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"jibfiles.dev/pkg/jibfiles/internal/adapter"
	"jibfiles.dev/pkg/jibfiles/internal/controller"
	"jibfiles.dev/pkg/jibfiles/internal/domain"
)

var projectFS adapter.ProjectFS
var projectLoader adapter.ProjectLoader
var aggregator *domain.Aggregator
var workflow domain.Workflow
var ui controller.UI

// projectFlag is a root-level flag naming the project descriptor to load.
var projectFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	projectFS = adapter.NewLocalProjectFS()
	projectLoader = adapter.NewYAMLProjectLoader()
	aggregator = domain.NewAggregator(projectFS)
	ui = controller.NewSimpleUI(rootCmd)
	workflow = domain.NewWorkflow(projectLoader, aggregator, ui)
}

const rootLongDescription = `Jibfiles reports which files on disk affect a container image build, so
external file watchers (e.g. skaffold) know what to watch. For a module of a
resolved project it prints three ordered path lists as JSON between the
literal marker lines:

  BEGIN JIB JSON
  {"build":[...],"inputs":[...],"ignore":[...]}
  END JIB JSON

The project is described by a jibfiles.yaml descriptor listing each module's
build descriptor, source/resource roots and resolved dependency artifacts.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jibfiles",
		Short: "Report the files that affect a container image build",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&projectFlag, projectFlagName, "f",
			viper.GetString(projectConfigKey),
			"path to the project descriptor",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

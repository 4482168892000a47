package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jibfiles.dev/pkg/jibfiles/pkg/jibjson"
)

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Extract a file report from a build log stream",
		Long: `Read a log stream (from a file, or stdin when no file is given), locate
the BEGIN JIB JSON / END JIB JSON block inside it and re-emit the payload as
plain JSON. Lines before and after the block are tolerated; a missing marker
or an invalid payload is an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readStream(cmd, args)
			if err != nil {
				return err
			}

			out, err := jibjson.Extract(raw)
			if err != nil {
				return err
			}

			body, err := json.Marshal(out)
			if err != nil {
				return fmt.Errorf("encode extracted report: %w", err)
			}

			// The extracted report is the data product: it must land on
			// stdout, not cobra's stderr default.
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func readStream(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}

	return string(data), nil
}

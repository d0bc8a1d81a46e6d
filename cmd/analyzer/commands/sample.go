package commands

import (
	"fmt"

	"access-log-analyzer/internal/app"

	"github.com/spf13/cobra"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write the bundled sample access log",
	Long:  `Write the bundled sample access log to path, or to input.fallback_path when no path is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Input.FallbackPath
	if len(args) == 1 {
		path = args[0]
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	if err := application.WriteSample(cmd.Context(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sample log written to %s\n", path)
	return nil
}

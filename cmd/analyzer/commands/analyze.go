package commands

import (
	"access-log-analyzer/internal/app"
	"access-log-analyzer/internal/shared/configs"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an access log and save the results",
	Long: `Analyze reads the access log, prints requests per IP, the most accessed endpoint
and suspicious clients, then writes the same views to the CSV report file.
A missing input log is replaced by a bundled sample unless --no-bootstrap is set.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "access log to analyze (overrides input.path)")
	cmd.Flags().Int("threshold", configs.DefaultFailedLoginThreshold, "flag clients with more failed logins than this")
	cmd.Flags().String("format", "table", "console output format (table, json, yaml)")
	cmd.Flags().Bool("no-bootstrap", false, "fail instead of writing a sample log when the input is missing")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyAnalyzeFlags(cmd, cfg); err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	return application.Analyze(cmd.Context(), cmd.OutOrStdout())
}

// applyAnalyzeFlags overrides cfg with the flags the user actually set, then revalidates.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *configs.Config) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path, _ = flags.GetString("input")
	}
	if flags.Changed("threshold") {
		cfg.Analysis.FailedLoginThreshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if noBootstrap, _ := flags.GetBool("no-bootstrap"); noBootstrap {
		cfg.Input.Bootstrap = false
	}
	return configs.Validate(cfg)
}

package commands

import (
	"fmt"
	"os"

	"access-log-analyzer/internal/shared/configs"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "log-analyzer",
	Short: "Summarize web server access logs",
	Long: `log-analyzer reads an access log once and reports requests per client IP,
the most accessed endpoint and clients with too many failed logins.
Results are printed and saved as CSV. It can also serve analyses over HTTP.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults and LOG_ANALYZER_* env when empty)")
}

func loadConfig() (*configs.Config, error) {
	cfg, err := configs.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

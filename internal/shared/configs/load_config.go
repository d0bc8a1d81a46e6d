package configs

import (
	"fmt"
	"strings"

	"access-log-analyzer/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOG_ANALYZER"

const DefaultFailedLoginThreshold = 10

var defaults = map[string]any{
	"log.level":                       "info",
	"input.path":                      "access.log",
	"input.fallback_path":             "sample_access.log",
	"input.bootstrap":                 true,
	"analysis.failed_login_threshold": DefaultFailedLoginThreshold,
	"report.root_dir":                 ".",
	"report.csv_file":                 "log_analysis_results.csv",
	"report.format":                   "table",
	"server.port":                     8080,
	"server.read_header_timeout":      5,
	"server.read_timeout":             30,
	"server.write_timeout":            30,
	"server.idle_timeout":             60,
	"server.max_body_bytes":           16 * 1024 * 1024,
}

// LoadConfig builds the configuration from defaults, the optional YAML file at configPath
// and LOG_ANALYZER_* environment variables (e.g. LOG_ANALYZER_ANALYSIS_FAILED_LOGIN_THRESHOLD),
// then validates it. An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags. Flag overrides applied after
// LoadConfig go through here again.
func Validate(cfg *Config) error {
	validate := validators.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Analysis.FailedLoginThreshold" -> "analysis.failedloginthreshold"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}

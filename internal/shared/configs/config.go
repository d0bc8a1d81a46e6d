package configs

// Config holds all configuration for the application.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Input    InputConfig    `mapstructure:"input" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// InputConfig describes where the access log is read from.
type InputConfig struct {
	Path         string `mapstructure:"path" validate:"required"`
	FallbackPath string `mapstructure:"fallback_path" validate:"required"` // used when a sample cannot be written at Path
	Bootstrap    bool   `mapstructure:"bootstrap"`                         // write the bundled sample when Path does not exist
}

// AnalysisConfig holds the classification knobs.
type AnalysisConfig struct {
	FailedLoginThreshold int `mapstructure:"failed_login_threshold" validate:"min=0"` // suspicious iff failures > threshold
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
	CSVFile string `mapstructure:"csv_file" validate:"required"`
	Format  string `mapstructure:"format" validate:"required,oneof=table json yaml"`
}

// ServerConfig holds configuration for the analysis API.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int `mapstructure:"max_body_bytes" validate:"required,min=1"`
}

package samples

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/metrics"

	"github.com/bitfield/script"
)

// Content is the bundled demo access log. It has traffic from four clients over two pages
// and one client with eleven failed logins.
//
//go:embed sample_access.log
var Content string

// Bootstrapper makes sure there is something to analyze on a fresh checkout.
//
//go:generate mockgen -source=bootstrapper.go -destination=./mocks/bootstrapper_mock.go -package=mocks
type Bootstrapper interface {
	// Resolve returns the path the analysis should read. An existing inputPath is returned as is.
	// A missing one gets the bundled sample written to it. If inputPath cannot be created, the
	// sample goes to fallbackPath instead, keeping a file already there.
	Resolve(ctx context.Context, inputPath, fallbackPath string) (string, error)
	// Write writes the bundled sample to path, replacing any existing file. A directory at
	// path is rejected.
	Write(ctx context.Context, path string) error
}

type bootstrapper struct{}

func NewBootstrapper() Bootstrapper {
	return &bootstrapper{}
}

func (b *bootstrapper) Resolve(ctx context.Context, inputPath, fallbackPath string) (string, error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldInputPath, inputPath).
		Str("fallback_path", fallbackPath).
		Logger()

	if exists(inputPath) {
		return inputPath, nil
	}

	err := b.Write(ctx, inputPath)
	if err == nil {
		logger.Info().Msg("input log not found, wrote sample log in its place")
		return inputPath, nil
	}
	logger.Warn().Err(err).Msg("cannot create input log, falling back")

	if exists(fallbackPath) {
		logger.Info().Msg("using existing fallback log")
		return fallbackPath, nil
	}
	if err := b.Write(ctx, fallbackPath); err != nil {
		return "", err
	}
	logger.Info().Msg("wrote sample log to fallback path")
	return fallbackPath, nil
}

func (b *bootstrapper) Write(ctx context.Context, path string) error {
	if err := writeSample(path); err != nil {
		metricSamplesWrittenTotal.WithLabelValues(errCodeBootstrapFailed).Inc()
		return errBootstrapFailed(err)
	}
	metricSamplesWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()
	loggers.Ctx(ctx).Debug().Str(loggers.FieldInputPath, path).Msg("wrote sample log")
	return nil
}

var errTargetIsDirectory = errors.New("target is a directory")

// writeSample writes Content to a temp file next to path and renames it into place, so an
// existing file is either fully replaced or left untouched.
func writeSample(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", errTargetIsDirectory, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if _, err := script.Echo(Content).WriteFile(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write sample: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func exists(path string) bool {
	return script.IfExists(path).Error() == nil
}

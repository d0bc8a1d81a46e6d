package reports

import (
	"encoding/json"
	"fmt"
	"io"

	"access-log-analyzer/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const notAvailable = "N/A"

// ConsoleRenderer writes a report for a human at a terminal, or as JSON/YAML for scripts.
//
//go:generate mockgen -source=console_renderer.go -destination=./mocks/console_renderer_mock.go -package=mocks
type ConsoleRenderer interface {
	Render(w io.Writer, report *models.Report, format string) error
}

type consoleRenderer struct{}

func NewConsoleRenderer() ConsoleRenderer {
	return &consoleRenderer{}
}

func (r *consoleRenderer) Render(w io.Writer, report *models.Report, format string) error {
	var err error
	switch format {
	case FormatJSON:
		err = renderJSON(w, report)
	case FormatYAML:
		err = renderYAML(w, report)
	case FormatTable, "":
		err = renderTable(w, report)
	default:
		return errRenderFailed(fmt.Errorf("unsupported format %q", format))
	}
	if err != nil {
		return errRenderFailed(err)
	}
	return nil
}

func renderJSON(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func renderYAML(w io.Writer, report *models.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func renderTable(w io.Writer, report *models.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Requests per IP\n")
	requests := tablewriter.NewWriter(ew)
	requests.SetHeader([]string{"IP Address", "Request Count"})
	for _, entry := range report.RequestsByClient {
		requests.Append([]string{entry.Key, humanize.Comma(entry.Count)})
	}
	requests.Render()

	ew.printf("\nMost Accessed Endpoint\n")
	endpoint := tablewriter.NewWriter(ew)
	endpoint.SetHeader([]string{"Endpoint", "Access Count"})
	if report.TopEndpoint != nil {
		endpoint.Append([]string{report.TopEndpoint.Key, humanize.Comma(report.TopEndpoint.Count)})
	} else {
		endpoint.Append([]string{notAvailable, notAvailable})
	}
	endpoint.Render()

	ew.printf("\nSuspicious Activity Detected (more than %d failed logins)\n", report.FailedLoginThreshold)
	if len(report.SuspiciousClients) == 0 {
		ew.printf("No suspicious activity detected.\n")
	} else {
		suspicious := tablewriter.NewWriter(ew)
		suspicious.SetHeader([]string{"IP Address", "Failed Login Attempts"})
		for _, entry := range report.SuspiciousClients {
			suspicious.Append([]string{entry.Key, humanize.Comma(entry.Count)})
		}
		suspicious.Render()
	}

	stats := report.Stats
	ew.printf("\n%s lines read, %s skipped", humanize.Comma(stats.LinesRead), humanize.Comma(stats.SkippedLines))
	if stats.TruncatedLines > 0 {
		ew.printf(", %s truncated", humanize.Comma(stats.TruncatedLines))
	}
	if stats.UnattributedFailures > 0 {
		ew.printf(", %s failed logins without a client", humanize.Comma(stats.UnattributedFailures))
	}
	ew.printf("\n")

	return ew.err
}

// errWriter keeps the first write error so table rendering, which has no error returns,
// can still report a broken output.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(e, format, args...)
}

package models

// LineFields is what the extractor could pull out of a single log line.
// Every field is optional and independent of the others.
type LineFields struct {
	ClientID    string // leading dotted-quad token, "" when absent
	Endpoint    string // request path after the method, "" when absent
	AuthFailure bool   // both the 401 status marker and the invalid credentials phrase are present

	// LastClientID is the most recently extracted client id in the stream up to and
	// including this line. A failure on this line is charged to it, so a line without its
	// own client id inherits the one from an earlier line. Empty until a client id is seen.
	LastClientID string
}

// HasClient reports whether the line carried a client id.
func (f LineFields) HasClient() bool { return f.ClientID != "" }

// HasEndpoint reports whether the line carried an endpoint.
func (f LineFields) HasEndpoint() bool { return f.Endpoint != "" }

// ParseStats counts what happened while folding a stream of lines.
type ParseStats struct {
	LinesRead            int64 `json:"linesRead" yaml:"linesRead"`
	LinesWithClient      int64 `json:"linesWithClient" yaml:"linesWithClient"`
	LinesWithEndpoint    int64 `json:"linesWithEndpoint" yaml:"linesWithEndpoint"`
	FailureLines         int64 `json:"failureLines" yaml:"failureLines"`
	UnattributedFailures int64 `json:"unattributedFailures" yaml:"unattributedFailures"`
	SkippedLines         int64 `json:"skippedLines" yaml:"skippedLines"`
	TruncatedLines       int64 `json:"truncatedLines" yaml:"truncatedLines"` // longer than the line limit, prefix used
}

// Tallies holds the three running counters of one analysis run.
type Tallies struct {
	Requests  *Tally // client id -> requests
	Endpoints *Tally // endpoint -> accesses
	Failures  *Tally // client id -> failed logins
	Stats     ParseStats
}

func NewTallies() *Tallies {
	return &Tallies{
		Requests:  NewTally(),
		Endpoints: NewTally(),
		Failures:  NewTally(),
	}
}

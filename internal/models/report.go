package models

import "time"

// Report is the set of derived views produced by one analysis.
//
// Example JSON:
//
//	{
//	  "analysisId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "source": "access.log",
//	  "generatedAt": "2026-10-17T09:12:44Z",
//	  "failedLoginThreshold": 10,
//	  "requestsByClient": [
//	    {"key": "203.0.113.5", "count": 11},
//	    {"key": "192.168.1.10", "count": 3}
//	  ],
//	  "topEndpoint": {"key": "/login", "count": 11},
//	  "suspiciousClients": [
//	    {"key": "203.0.113.5", "count": 11}
//	  ],
//	  "stats": {"linesRead": 19, "linesWithClient": 19, ...}
//	}
//
// TopEndpoint is nil when no endpoint was extracted from the input.
type Report struct {
	AnalysisID           string     `json:"analysisId,omitempty" yaml:"analysisId,omitempty"`
	Source               string     `json:"source,omitempty" yaml:"source,omitempty"`
	GeneratedAt          time.Time  `json:"generatedAt" yaml:"generatedAt"`
	FailedLoginThreshold int        `json:"failedLoginThreshold" yaml:"failedLoginThreshold"`
	RequestsByClient     []KeyCount `json:"requestsByClient" yaml:"requestsByClient"`
	TopEndpoint          *KeyCount  `json:"topEndpoint" yaml:"topEndpoint"`
	SuspiciousClients    []KeyCount `json:"suspiciousClients" yaml:"suspiciousClients"`
	Stats                ParseStats `json:"stats" yaml:"stats"`
}

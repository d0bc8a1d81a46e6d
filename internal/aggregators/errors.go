package aggregators

import "errors"

// ErrInputReadFailed wraps any error raised while reading the log stream.
var ErrInputReadFailed = errors.New("failed to read log input")

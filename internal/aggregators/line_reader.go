package aggregators

import (
	"bufio"
	"errors"
	"io"
)

const (
	readerBufferBytes = 64 * 1024
	maxLineBytes      = 1024 * 1024
)

// lineReader splits a stream into lines of any length. Only the first maxLineBytes of a line
// are kept; the rest is read and discarded so the stream stays in step.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, readerBufferBytes)}
}

// next returns the next line without its "\n" or "\r\n" terminator and whether it was cut at
// maxLineBytes. It returns io.EOF once the stream is exhausted. A final line without a
// terminator is still returned. The line is only valid until the following call.
func (lr *lineReader) next() (line []byte, truncated bool, err error) {
	lr.buf = lr.buf[:0]
	read := 0
	for {
		chunk, err := lr.r.ReadSlice('\n')
		read += len(chunk)
		// two extra bytes so a terminator right after a full line does not look like a cut
		if room := maxLineBytes + 2 - len(lr.buf); room > 0 {
			lr.buf = append(lr.buf, chunk[:min(room, len(chunk))]...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, false, err
		}
		if read == 0 {
			return nil, false, io.EOF
		}
		break
	}

	line = lr.buf
	if read > len(line) {
		return line[:maxLineBytes], true, nil
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	if len(line) > maxLineBytes {
		return line[:maxLineBytes], true, nil
	}
	return line, false, nil
}

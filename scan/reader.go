// ABOUTME: Wedge-scanner input reader
// ABOUTME: Consumes newline-terminated scans from an input stream
package scan

import (
	"bufio"
	"io"
)

// Result is one line of scanner input: a decoded tag or a decode error
// carrying the raw payload.
type Result struct {
	Tag Tag
	Raw string
	Err error
}

// ReadAll consumes newline-terminated scan payloads from r until EOF,
// invoking fn per line. Handheld scanners in keyboard-wedge mode emit
// exactly this shape. Decode failures are reported through fn and do not
// stop the stream.
func ReadAll(r io.Reader, fn func(Result)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tag, err := Parse(line)
		fn(Result{Tag: tag, Raw: line, Err: err})
	}
	return scanner.Err()
}

package input

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is the sentinel for any parser that encounters a line
// it cannot decode (wrong field count, non-integer token).
var ErrMalformedLine = errors.New("input: malformed line")

func malformed(reason string, lineNo int, raw string) error {
	return fmt.Errorf("%s (line %d: %q): %w", reason, lineNo, raw, ErrMalformedLine)
}

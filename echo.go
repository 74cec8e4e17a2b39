package textkit

import (
	"io"
	"strings"
)

// Echo writes args separated by a single space, followed by a newline
// unless newline is false.
func Echo(w io.Writer, args []string, newline bool) error {
	if len(args) == 0 {
		return &ConfigError{Option: "text", Err: ErrMissing}
	}
	str := strings.Join(args, " ")
	if newline {
		str += "\n"
	}
	_, err := io.WriteString(w, str)
	return err
}

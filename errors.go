package textkit

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrIllegalCount = errors.New("illegal count")
	ErrConflict     = errors.New("conflicting options")
	ErrMissing      = errors.New("missing operand")
)

type ConfigError struct {
	Option string
	Value  string
	Err    error
}

func (e *ConfigError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIllegalCount):
		return fmt.Sprintf("illegal %s count -- %s", e.Option, e.Value)
	case e.Value != "":
		return fmt.Sprintf("%s: %s: %s", e.Option, e.Value, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Option, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

const (
	opOpen = "open"
	opRead = "read"
)

// SourceError reports a failure tied to one input token. Op is either
// "open" or "read".
type SourceError struct {
	Op    string
	Token string
	Err   error
}

func openError(token string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &SourceError{
		Op:    opOpen,
		Token: token,
		Err:   err,
	}
}

func readError(token string, err error) error {
	var se *SourceError
	if errors.As(err, &se) {
		return err
	}
	return &SourceError{
		Op:    opRead,
		Token: token,
		Err:   err,
	}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) IsOpen() bool {
	return e.Op == opOpen
}

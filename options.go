package textkit

import (
	"io"
	"log/slog"
)

type DriverOption func(*Driver) error

func WithStdin(r io.Reader) DriverOption {
	return func(d *Driver) error {
		d.stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) DriverOption {
	return func(d *Driver) error {
		d.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) DriverOption {
	return func(d *Driver) error {
		d.stderr = w
		return nil
	}
}

// WithName sets the program name used as prefix of diagnostics.
func WithName(name string) DriverOption {
	return func(d *Driver) error {
		d.name = name
		return nil
	}
}

func WithOpener(open Opener) DriverOption {
	return func(d *Driver) error {
		if open != nil {
			d.open = open
		}
		return nil
	}
}

func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) error {
		if logger != nil {
			d.logger = logger
		}
		return nil
	}
}

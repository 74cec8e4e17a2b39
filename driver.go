package textkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const DefaultName = "textkit"

type validator interface {
	Validate() error
}

// Result is the outcome of processing one input.
type Result struct {
	Token string
	Err   error
}

type Report []Result

func (r Report) Failed() int {
	var n int
	for _, x := range r {
		if x.Err != nil {
			n++
		}
	}
	return n
}

func (r Report) Err() error {
	var errs []error
	for _, x := range r {
		if x.Err != nil {
			errs = append(errs, x.Err)
		}
	}
	return errors.Join(errs...)
}

// Driver runs one Filter over a list of tokens, one input at a time.
type Driver struct {
	filter Filter
	name   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	open   Opener
	logger *slog.Logger
}

func NewDriver(filter Filter, options ...DriverOption) (*Driver, error) {
	if filter == nil {
		return nil, &ConfigError{Option: "filter", Err: ErrMissing}
	}
	if v, ok := filter.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	d := Driver{
		filter: filter,
		name:   DefaultName,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		open:   openFile,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range options {
		if err := o(&d); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// Run processes every token in order. Failures of individual inputs are
// reported on the error stream and recorded in the Report; they never stop
// the remaining inputs.
func (d *Driver) Run(tokens []string) Report {
	if len(tokens) == 0 {
		tokens = []string{StdinToken}
	}
	var (
		report = make(Report, 0, len(tokens))
		out    = bufio.NewWriter(d.stdout)
		state  = State{Total: len(tokens)}
	)
	for i, t := range tokens {
		state.Index = i
		next, err := d.runOne(out, t, state)
		if err == nil {
			state = next
		} else {
			state.Line = next.Line
			d.report(err)
		}
		report = append(report, Result{Token: t, Err: err})
	}
	if f, ok := d.filter.(Finisher); ok {
		if err := f.Finish(out, state); err != nil {
			d.report(err)
		}
		if err := out.Flush(); err != nil {
			d.report(err)
		}
	}
	d.logger.Debug("run done", "inputs", len(tokens), "failed", report.Failed())
	return report
}

func (d *Driver) runOne(out *bufio.Writer, token string, st State) (State, error) {
	src, err := openWith(token, d.stdin, d.open)
	if err != nil {
		d.logger.Debug("source not opened", "token", token, "err", err)
		return st, err
	}
	defer src.Close()

	if f, ok := unwrapFile(src); ok {
		d.logger.Debug("source opened", "token", token, "fd", f.Fd(), "file", f.Name())
	} else {
		d.logger.Debug("source opened", "token", token)
	}

	next, err := d.filter.Filter(out, src, st)
	if e := out.Flush(); err == nil && e != nil {
		err = e
	}
	if err != nil {
		d.logger.Debug("source failed", "token", token, "err", err)
		return next, readError(token, err)
	}
	d.logger.Debug("source done", "token", token)
	return next, nil
}

func (d *Driver) report(err error) {
	fmt.Fprintf(d.stderr, "%s: %s", d.name, err)
	fmt.Fprintln(d.stderr)
}

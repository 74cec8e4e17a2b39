package textkit

import (
	"bytes"
	"io"
)

const lineEnd = "$"

type Cat struct {
	Number         bool
	NumberNonblank bool
	ShowEnds       bool
}

func (c Cat) Validate() error {
	if c.Number && c.NumberNonblank {
		return &ConfigError{Option: "number-nonblank", Err: ErrConflict}
	}
	return nil
}

func (c Cat) Filter(w io.Writer, src *Source, st State) (State, error) {
	rs := src.Lines()
	for rs.Next() {
		line := rs.Line()
		if err := c.writeLine(w, line, &st.Line); err != nil {
			return st, err
		}
	}
	if err := rs.Err(); err != nil {
		return st, readError(src.Token, err)
	}
	return st, nil
}

func (c Cat) writeLine(w io.Writer, line []byte, count *int) error {
	if !c.Number && !c.NumberNonblank && !c.ShowEnds {
		_, err := w.Write(line)
		return err
	}
	var (
		body = line
		eol  []byte
	)
	if bytes.HasSuffix(line, []byte{'\n'}) {
		body, eol = line[:len(line)-1], line[len(line)-1:]
	}
	if c.Number || (c.NumberNonblank && len(body) > 0) {
		*count++
		if err := writeNumber(w, *count); err != nil {
			return err
		}
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if len(eol) == 0 {
		return nil
	}
	if c.ShowEnds {
		if _, err := io.WriteString(w, lineEnd); err != nil {
			return err
		}
	}
	_, err := w.Write(eol)
	return err
}

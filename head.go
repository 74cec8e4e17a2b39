package textkit

import (
	"errors"
	"io"
	"strconv"
)

const DefaultLines = 10

// Head keeps the leading part of each input. Bytes takes precedence over
// Lines; when both are zero DefaultLines is used.
type Head struct {
	Lines int
	Bytes int64
}

func (h Head) Validate() error {
	if h.Lines != 0 && h.Bytes != 0 {
		return &ConfigError{Option: "bytes", Err: ErrConflict}
	}
	if h.Lines < 0 {
		return &ConfigError{Option: "line", Value: strconv.Itoa(h.Lines), Err: ErrIllegalCount}
	}
	if h.Bytes < 0 {
		return &ConfigError{Option: "byte", Value: strconv.FormatInt(h.Bytes, 10), Err: ErrIllegalCount}
	}
	return nil
}

func (h Head) Filter(w io.Writer, src *Source, st State) (State, error) {
	if st.Multi() {
		if err := writeHeader(w, src.Token, st.First()); err != nil {
			return st, err
		}
	}
	var err error
	if h.Bytes > 0 {
		err = h.copyBytes(w, src)
	} else {
		err = h.copyLines(w, src)
	}
	return st, err
}

func (h Head) copyBytes(w io.Writer, src *Source) error {
	_, err := io.CopyN(w, src, h.Bytes)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return readError(src.Token, err)
	}
	return nil
}

func (h Head) copyLines(w io.Writer, src *Source) error {
	limit := h.Lines
	if limit <= 0 {
		limit = DefaultLines
	}
	rs := src.Lines()
	for i := 0; i < limit && rs.Next(); i++ {
		if _, err := w.Write(rs.Line()); err != nil {
			return err
		}
	}
	if err := rs.Err(); err != nil {
		return readError(src.Token, err)
	}
	return nil
}

package textkit

import (
	"bufio"
	"io"
	"os"

	"github.com/midbel/rw"
)

const StdinToken = "-"

// Opener opens the file behind a token that is not StdinToken.
type Opener func(string) (io.ReadCloser, error)

func openFile(file string) (io.ReadCloser, error) {
	return os.Open(file)
}

type Source struct {
	Token string

	*bufio.Reader
	raw    io.Reader
	closer io.Closer
}

// Open resolves token into a buffered Source. The StdinToken always
// resolves to stdin and is never closed by Source.Close.
func Open(token string, stdin io.Reader) (*Source, error) {
	return openWith(token, stdin, openFile)
}

func openWith(token string, stdin io.Reader, open Opener) (*Source, error) {
	if token == StdinToken {
		if stdin == nil {
			stdin = os.Stdin
		}
		return newSource(token, stdin, nil), nil
	}
	r, err := open(token)
	if err != nil {
		return nil, openError(token, err)
	}
	return newSource(token, r, r), nil
}

func newSource(token string, r io.Reader, c io.Closer) *Source {
	return &Source{
		Token:  token,
		Reader: bufio.NewReader(r),
		raw:    r,
		closer: c,
	}
}

func (s *Source) Lines() *LineReader {
	return NewLineReader(s.Reader)
}

func (s *Source) IsStdin() bool {
	return s.closer == nil
}

func (s *Source) Unwrap() io.Reader {
	return s.raw
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

func unwrapFile(r io.Reader) (*os.File, bool) {
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

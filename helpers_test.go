package textkit_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/midbel/textkit"
)

var errBroken = errors.New("broken pipe")

type stdio struct {
	In  *strings.Reader
	Out bytes.Buffer
	Err bytes.Buffer
}

func (s *stdio) Reset() {
	s.Out.Reset()
	s.Err.Reset()
}

// opener serves files from memory. Tokens starting with "broken" yield
// their content and then fail.
type opener map[string]string

func (o opener) Open(token string) (io.ReadCloser, error) {
	str, ok := o[token]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: token, Err: os.ErrNotExist}
	}
	var r io.Reader = strings.NewReader(str)
	if strings.HasPrefix(token, "broken") {
		r = io.MultiReader(r, iotest.ErrReader(errBroken))
	}
	return io.NopCloser(r), nil
}

func runFilter(t *testing.T, f textkit.Filter, files opener, tokens ...string) (*stdio, textkit.Report) {
	t.Helper()
	var sio stdio
	sio.In = strings.NewReader(files[textkit.StdinToken])
	d, err := textkit.NewDriver(f,
		textkit.WithName("test"),
		textkit.WithStdin(sio.In),
		textkit.WithStdout(&sio.Out),
		textkit.WithStderr(&sio.Err),
		textkit.WithOpener(files.Open),
	)
	if err != nil {
		t.Fatalf("fail to create driver: %s", err)
	}
	return &sio, d.Run(tokens)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("fail to write %s: %s", file, err)
	}
	return file
}

package textkit_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/midbel/textkit"
)

func TestDriverMissingFile(t *testing.T) {
	var (
		valid   = writeFile(t, "valid.txt", "foo\nbar\n")
		missing = valid + ".missing"
		sio     stdio
	)
	d, err := textkit.NewDriver(textkit.Cat{},
		textkit.WithName("catr"),
		textkit.WithStdout(&sio.Out),
		textkit.WithStderr(&sio.Err),
	)
	if err != nil {
		t.Fatalf("fail to create driver: %s", err)
	}
	report := d.Run([]string{missing, valid})
	if got, want := sio.Out.String(), "foo\nbar\n"; got != want {
		t.Errorf("output mismatched: want %q, got %q", want, got)
	}
	diag := sio.Err.String()
	if !strings.HasPrefix(diag, "catr: "+missing+": ") {
		t.Errorf("diagnostic does not name the token: %q", diag)
	}
	if strings.Count(diag, missing) != 1 {
		t.Errorf("token repeated in diagnostic: %q", diag)
	}
	if len(report) != 2 {
		t.Fatalf("results mismatched: want 2, got %d", len(report))
	}
	var se *textkit.SourceError
	if !errors.As(report[0].Err, &se) || !se.IsOpen() {
		t.Errorf("open error expected, got %v", report[0].Err)
	}
	if !errors.Is(report[0].Err, os.ErrNotExist) {
		t.Errorf("cause lost: %v", report[0].Err)
	}
	if report[1].Err != nil {
		t.Errorf("unexpected error for valid input: %s", report[1].Err)
	}
}

func TestDriverReadError(t *testing.T) {
	files := opener{
		"broken": "foo\nbar\n",
		"ok":     "baz\n",
	}
	sio, report := runFilter(t, textkit.Cat{Number: true}, files, "broken", "ok")
	want := "     1\tfoo\n     2\tbar\n     3\tbaz\n"
	if got := sio.Out.String(); got != want {
		t.Errorf("output mismatched: want %q, got %q", want, got)
	}
	if got, want := sio.Err.String(), "test: broken: "+errBroken.Error()+"\n"; got != want {
		t.Errorf("diagnostic mismatched: want %q, got %q", want, got)
	}
	var se *textkit.SourceError
	if !errors.As(report[0].Err, &se) || se.IsOpen() {
		t.Errorf("read error expected, got %v", report[0].Err)
	}
	if !errors.Is(report.Err(), errBroken) {
		t.Errorf("cause lost: %v", report.Err())
	}
}

func TestDriverDefaultToken(t *testing.T) {
	sio, report := runFilter(t, textkit.Head{Lines: 1}, opener{"-": "stdin\nmore\n"})
	if len(report) != 1 || report[0].Token != textkit.StdinToken {
		t.Fatalf("stdin not used by default: %+v", report)
	}
	if got, want := sio.Out.String(), "stdin\n"; got != want {
		t.Errorf("output mismatched: want %q, got %q", want, got)
	}
}

func TestDriverNilFilter(t *testing.T) {
	if _, err := textkit.NewDriver(nil); err == nil {
		t.Fatalf("nil filter accepted")
	}
}

func TestOpen(t *testing.T) {
	file := writeFile(t, "open.txt", "content")
	src, err := textkit.Open(file, nil)
	if err != nil {
		t.Fatalf("fail to open %s: %s", file, err)
	}
	if src.IsStdin() || src.Token != file {
		t.Errorf("source mismatched: %+v", src)
	}
	if err := src.Close(); err != nil {
		t.Errorf("fail to close: %s", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second close failed: %s", err)
	}

	src, err = textkit.Open(textkit.StdinToken, strings.NewReader("in"))
	if err != nil {
		t.Fatalf("stdin must always resolve: %s", err)
	}
	if !src.IsStdin() {
		t.Errorf("- should resolve to stdin")
	}
	src.Close()

	if _, err := textkit.Open(file+".none", nil); err == nil {
		t.Errorf("missing file opened")
	}
}

package textkit

import (
	"io"
	"unicode"
	"unicode/utf8"
)

type Metric uint8

const (
	MetricLines Metric = 1 << iota
	MetricWords
	MetricBytes
	MetricChars
)

var canonical = []Metric{
	MetricLines,
	MetricWords,
	MetricBytes,
	MetricChars,
}

const defaultMetrics = MetricLines | MetricWords | MetricBytes

// Metrics is a set of Metric. The empty set stands for lines, words and
// bytes.
type Metrics uint8

func MetricsOf(ms ...Metric) Metrics {
	var set Metrics
	for _, m := range ms {
		set |= Metrics(m)
	}
	return set
}

func (ms Metrics) Has(m Metric) bool {
	return ms&Metrics(m) != 0
}

func (ms Metrics) normalize() Metrics {
	if ms == 0 {
		return Metrics(defaultMetrics)
	}
	return ms
}

type FileInfo struct {
	Lines int
	Words int
	Bytes int
	Chars int
}

func (f FileInfo) Add(other FileInfo) FileInfo {
	f.Lines += other.Lines
	f.Words += other.Words
	f.Bytes += other.Bytes
	f.Chars += other.Chars
	return f
}

func (f FileInfo) get(m Metric) int {
	switch m {
	case MetricLines:
		return f.Lines
	case MetricWords:
		return f.Words
	case MetricBytes:
		return f.Bytes
	case MetricChars:
		return f.Chars
	default:
		return 0
	}
}

type Count struct {
	Metrics Metrics
}

func (c Count) Filter(w io.Writer, src *Source, st State) (State, error) {
	info, err := CountLines(src.Lines())
	if err != nil {
		return st, readError(src.Token, err)
	}
	st.Totals = st.Totals.Add(info)
	return st, writeCounts(w, info, c.Metrics, src.Token)
}

func (c Count) Finish(w io.Writer, st State) error {
	if !st.Multi() {
		return nil
	}
	return writeCounts(w, st.Totals, c.Metrics, totalName)
}

// CountLines consumes rs to the end and returns its metrics.
func CountLines(rs *LineReader) (FileInfo, error) {
	var info FileInfo
	for rs.Next() {
		line := rs.Line()
		info.Lines++
		info.Bytes += len(line)
		info.Chars += utf8.RuneCount(line)
		info.Words += countWords(line)
	}
	return info, rs.Err()
}

func countWords(line []byte) int {
	var (
		words int
		space = true
	)
	for len(line) > 0 {
		r, z := utf8.DecodeRune(line)
		line = line[z:]
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			words++
		}
		space = false
	}
	return words
}

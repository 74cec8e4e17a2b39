package textkit

import (
	"fmt"
	"io"
)

const (
	numberWidth = 6
	countWidth  = 8
	totalName   = "total"
)

func writeNumber(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "%*d\t", numberWidth, n)
	return err
}

func writeHeader(w io.Writer, token string, first bool) error {
	var prefix string
	if !first {
		prefix = "\n"
	}
	_, err := fmt.Fprintf(w, "%s==> %s <==\n", prefix, token)
	return err
}

func writeCounts(w io.Writer, info FileInfo, metrics Metrics, name string) error {
	metrics = metrics.normalize()
	for _, m := range canonical {
		if !metrics.Has(m) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%*d", countWidth, info.get(m)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, " %s\n", name)
	return err
}

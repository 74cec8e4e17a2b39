package textkit

import (
	"io"
)

// State is the accumulator handed from one input to the next by the
// Driver. Index and Total locate the current input among the configured
// ones; Line and Totals are the values that cross inputs.
type State struct {
	Index int
	Total int

	Line   int
	Totals FileInfo
}

func (s State) Multi() bool {
	return s.Total > 1
}

func (s State) First() bool {
	return s.Index == 0
}

// Filter is implemented by Cat, Head and Count.
type Filter interface {
	Filter(io.Writer, *Source, State) (State, error)
}

// Finisher is implemented by filters that write a trailer once every
// input has been processed.
type Finisher interface {
	Finish(io.Writer, State) error
}

var (
	_ Filter   = Cat{}
	_ Filter   = Head{}
	_ Filter   = Count{}
	_ Finisher = Count{}
)

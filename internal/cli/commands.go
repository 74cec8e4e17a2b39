package cli

import (
	"errors"

	"github.com/midbel/textkit"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("invalid value")

func NewCatCommand(stdio Stdio) *cobra.Command {
	a := newApp(stdio)
	cmd := a.catCommand("catr")
	a.bind(cmd)
	return cmd
}

func NewHeadCommand(stdio Stdio) *cobra.Command {
	a := newApp(stdio)
	cmd := a.headCommand("headr")
	a.bind(cmd)
	return cmd
}

func NewCountCommand(stdio Stdio) *cobra.Command {
	a := newApp(stdio)
	cmd := a.countCommand("wcr")
	a.bind(cmd)
	return cmd
}

func NewEchoCommand(stdio Stdio) *cobra.Command {
	a := newApp(stdio)
	cmd := a.echoCommand("echor")
	a.bind(cmd)
	return cmd
}

// NewRootCommand groups every utility as a subcommand of textkit.
func NewRootCommand(stdio Stdio) *cobra.Command {
	a := newApp(stdio)
	root := &cobra.Command{
		Use:   "textkit",
		Short: "classic text filters",
	}
	root.AddCommand(
		a.catCommand("cat"),
		a.headCommand("head"),
		a.countCommand("wc"),
		a.echoCommand("echo"),
	)
	a.bind(root)
	return root
}

func (a *app) catCommand(name string) *cobra.Command {
	var c textkit.Cat
	cmd := &cobra.Command{
		Use:   name + " [FILE]...",
		Short: "concatenate files to standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, c, args)
		},
	}
	set := cmd.Flags()
	set.BoolVarP(&c.Number, "number", "n", false, "number all output lines")
	set.BoolVarP(&c.NumberNonblank, "number-nonblank", "b", false, "number nonempty output lines")
	set.BoolVarP(&c.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
	return cmd
}

func (a *app) headCommand(name string) *cobra.Command {
	var lines, bytes string
	cmd := &cobra.Command{
		Use:   name + " [FILE]...",
		Short: "output the first part of files",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				h   textkit.Head
				err error
			)
			if cmd.Flags().Changed("bytes") {
				h.Bytes, err = textkit.ParseByteCount(bytes)
			} else {
				h.Lines, err = textkit.ParseLineCount(lines)
			}
			if err != nil {
				return err
			}
			return a.run(cmd, h, args)
		},
	}
	set := cmd.Flags()
	set.StringVarP(&lines, "lines", "n", "10", "print the first N lines")
	set.StringVarP(&bytes, "bytes", "c", "", "print the first N bytes")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	return cmd
}

func (a *app) countCommand(name string) *cobra.Command {
	var lines, words, bytes, chars bool
	cmd := &cobra.Command{
		Use:   name + " [FILE]...",
		Short: "print line, word and byte counts for each file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ms []textkit.Metric
			if lines {
				ms = append(ms, textkit.MetricLines)
			}
			if words {
				ms = append(ms, textkit.MetricWords)
			}
			if bytes {
				ms = append(ms, textkit.MetricBytes)
			}
			if chars {
				ms = append(ms, textkit.MetricChars)
			}
			c := textkit.Count{
				Metrics: textkit.MetricsOf(ms...),
			}
			return a.run(cmd, c, args)
		},
	}
	set := cmd.Flags()
	set.BoolVarP(&lines, "lines", "l", false, "print the newline counts")
	set.BoolVarP(&words, "words", "w", false, "print the word counts")
	set.BoolVarP(&bytes, "bytes", "c", false, "print the byte counts")
	set.BoolVarP(&chars, "chars", "m", false, "print the character counts")
	return cmd
}

func (a *app) echoCommand(name string) *cobra.Command {
	var omit bool
	cmd := &cobra.Command{
		Use:   name + " TEXT...",
		Short: "display a line of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.logger(); err != nil {
				return err
			}
			if err := textkit.Echo(cmd.OutOrStdout(), args, !omit); err != nil {
				return &ExitError{Code: CodeFail, Err: err}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&omit, "omit-newline", "n", false, "do not output the trailing newline")
	return cmd
}

func (a *app) run(cmd *cobra.Command, filter textkit.Filter, args []string) error {
	logger, err := a.logger()
	if err != nil {
		return err
	}
	logger = logger.With("cmd", cmd.Name())

	d, err := textkit.NewDriver(filter,
		textkit.WithName(cmd.Name()),
		textkit.WithStdin(cmd.InOrStdin()),
		textkit.WithStdout(cmd.OutOrStdout()),
		textkit.WithStderr(cmd.ErrOrStderr()),
		textkit.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	report := d.Run(args)
	if n := report.Failed(); n > 0 {
		logger.Info("inputs failed", "count", n, "total", len(report))
	}
	return nil
}

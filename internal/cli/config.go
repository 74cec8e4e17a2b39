package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/midbel/textkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "textkit"

	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

type Settings struct {
	LogLevel  string
	LogFormat string
}

type app struct {
	Stdio
	v *viper.Viper
}

func newApp(stdio Stdio) *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{
		Stdio: stdio,
		v:     v,
	}
}

// bind registers the ambient flags on cmd and its children.
func (a *app) bind(cmd *cobra.Command) {
	set := cmd.PersistentFlags()
	set.String(keyLogLevel, "warn", "logging level: debug, info, warn or error")
	set.String(keyLogFormat, "text", "logging format: text or json")
	a.v.BindPFlag(keyLogLevel, set.Lookup(keyLogLevel))
	a.v.BindPFlag(keyLogFormat, set.Lookup(keyLogFormat))

	cmd.SetIn(a.Stdin)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
}

func (a *app) settings() (Settings, error) {
	s := Settings{
		LogLevel:  strings.ToLower(a.v.GetString(keyLogLevel)),
		LogFormat: strings.ToLower(a.v.GetString(keyLogFormat)),
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return s, &textkit.ConfigError{Option: keyLogLevel, Value: s.LogLevel, Err: errInvalid}
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return s, &textkit.ConfigError{Option: keyLogFormat, Value: s.LogFormat, Err: errInvalid}
	}
	return s, nil
}

func (a *app) logger() (*slog.Logger, error) {
	s, err := a.settings()
	if err != nil {
		return nil, err
	}
	return newLogger(s.LogLevel, s.LogFormat, a.Stderr), nil
}

func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	opts := slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &opts))
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// levelFor picks the log level from -v/-q counts, unless verbosity names one.
func levelFor(verbose, quiet int, verbosity string) slog.Level {
	if verbosity != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(verbosity))); err == nil {
			return level
		}
		slog.Warn("Bad verbosity.", "value", verbosity)
	}
	// Default log level is INFO, which index is 1.
	i := 1 - verbose + quiet
	i = max(0, min(i, len(levels)-1))
	return levels[i]
}

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

// SetLoggingHandler installs the default slog logger writing to w.
func SetLoggingHandler(w io.Writer, level slog.Level, color bool) {
	var h slog.Handler
	if color {
		h = tint.NewHandler(w, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if lvl, ok := a.Value.Any().(slog.Level); ok && a.Key == slog.LevelKey && len(groups) == 0 {
					if s, ok := levelStrings[lvl]; ok {
						a.Value = slog.StringValue(s)
					}
				}
				if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
					// Drop nil error.
					a.Key = ""
				}
				return a
			},
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(h))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

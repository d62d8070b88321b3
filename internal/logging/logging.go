package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level maps a level name to a zerolog level, defaulting to info.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// ValidLevel reports whether name is a known level.
func ValidLevel(name string) bool {
	_, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

// Setup configures the global logger. Logs go to stderr so stdout stays free
// for written file names; a console writer is used when stderr is a terminal.
// When logFile is set JSON lines are appended there instead. The returned
// func releases the log file.
func Setup(level, logFile string) (func(), error) {
	zerolog.SetGlobalLevel(Level(level))
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return func() {}, err
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}
	var out io.Writer = os.Stderr
	if isTerminalAttached(os.Stderr) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return func() {}, nil
}

package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Logger represents application logger.
type Logger struct {
	zl zerolog.Logger
}

// New creates new Logger instance with the specified level. Levels
// follow zerolog numbering: -1 trace, 0 debug, 1 info, and so on.
func New(level int) *Logger {
	zl := zerolog.New(os.Stdout).Level(zerolog.Level(level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Debug logs msg at debug level with alternating key/value args.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(l.zl.Debug(), msg, args)
}

// Info logs msg at info level with alternating key/value args.
func (l *Logger) Info(msg string, args ...any) {
	l.log(l.zl.Info(), msg, args)
}

// Warn logs msg at warn level with alternating key/value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(l.zl.Warn(), msg, args)
}

// Error logs msg at error level with alternating key/value args.
func (l *Logger) Error(msg string, args ...any) {
	l.log(l.zl.Error(), msg, args)
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(l.zl.Error(), msg, args)
	os.Exit(1)
}

func (l *Logger) log(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		e = e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}

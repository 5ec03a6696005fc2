// Package log provides prefixed, coloured component loggers backed by logrus.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// Logger writes "[PREFIX] [LEVEL] message" lines for one component.
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger for the component named prefix. color is an ANSI
// escape sequence applied to the prefix; pass "" for plain output.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{prefix: prefix, color: color})
	return &Logger{entry: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type formatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(e.Time.Format("2006/01/02 15:04:05 "))
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}
	fmt.Fprintf(&b, "[%s] %s\n", levelName(e.Level), e.Message)
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

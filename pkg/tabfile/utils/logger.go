// Package utils holds small helpers shared by the tabfile commands.
package utils

import (
	"io"
	"log"
)

// Logger is the leveled logger used by the command-line tools. Library
// code never logs; it returns errors instead.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// StandardLogger writes prefixed log lines to a single destination.
// Debug output is dropped unless verbose is set.
type StandardLogger struct {
	logger  *log.Logger
	verbose bool
}

// NewStandardLogger builds a logger writing to w, usually os.Stderr so
// that log lines never mix with row output on stdout.
func NewStandardLogger(w io.Writer, verbose bool) *StandardLogger {
	return &StandardLogger{
		logger:  log.New(w, "[tabfile] ", log.LstdFlags),
		verbose: verbose,
	}
}

func (l *StandardLogger) Info(format string, v ...interface{}) {
	l.logger.Printf("INFO: "+format, v...)
}

func (l *StandardLogger) Error(format string, v ...interface{}) {
	l.logger.Printf("ERROR: "+format, v...)
}

func (l *StandardLogger) Debug(format string, v ...interface{}) {
	if l.verbose {
		l.logger.Printf("DEBUG: "+format, v...)
	}
}

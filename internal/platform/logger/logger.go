// Package logger wraps the standard library logger with leveled output so
// service, scheduler and storage messages share one format.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New writes info and warn lines to out and errors to errOut.
func New(out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.LUTC
	return &Logger{
		infoLogger:  log.New(out, "[BUDDY-INFO] ", flags),
		warnLogger:  log.New(out, "[BUDDY-WARN] ", flags),
		errorLogger: log.New(errOut, "[BUDDY-ERROR] ", flags),
	}
}

func NewStd() *Logger {
	return New(os.Stdout, os.Stderr)
}

// Discard drops everything. Intended for tests.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

// Event logs one committed domain event.
func (l *Logger) Event(eventType, eventID, details string) {
	l.infoLogger.Printf("[EVENT:%s] id=%s | %s", eventType, eventID, details)
}

// Package logutil provides logging utilities.
//
// Loggers are plain *log.Logger values sharing one output, which discards
// everything until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. The prefix is usually the name of the
// package in brackets, like "[store] ".
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger,
// including those obtained later.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is truncated. If fname is empty, logs are discarded.
// The returned function closes the file.
func SetOutputFile(fname string) (func() error, error) {
	if fname == "" {
		SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(file)
	return func() error {
		SetOutput(io.Discard)
		return file.Close()
	}, nil
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "trollmaze.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging opens dir/trollmaze.log when debug is set, rotating an oversized file first
// Without debug, or if the file cannot be opened, logs are discarded
// The returned file is nil when nothing was opened
func setupLogging(debug bool, dir string) (*log.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return log.New(io.Discard, "", 0), nil
	}

	f, err := openLogFile(dir)
	if err != nil {
		log.SetOutput(io.Discard)
		return log.New(io.Discard, "", 0), nil
	}

	// Package-level log calls from dependencies land in the same file
	log.SetOutput(f)
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("trollmaze-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// Olympus: An OlympusScan content source for manga reader hosts.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger interface for logging operations
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level Level)
}

// Service implements the Logger interface
type Service struct {
	level   Level
	logFile string
	file    *os.File
	logger  *log.Logger
	mu      sync.Mutex
	pid     int
}

// NewService creates a logger writing to logFile. Logs are discarded when
// the file is empty or cannot be opened, so stdout stays free for the
// JSON-RPC transport.
func NewService(logFile string) *Service {
	s := &Service{
		level:   LevelInfo,
		logFile: logFile,
		pid:     os.Getpid(),
	}

	var output = io.Discard
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				s.file = file
				output = file
			}
		}
	}

	s.logger = log.New(output, "", 0)
	return s
}

// NewWriterService creates a logger writing to w
func NewWriterService(w io.Writer) *Service {
	return &Service{
		level:  LevelInfo,
		logger: log.New(w, "", 0),
		pid:    os.Getpid(),
	}
}

// SetLevel sets the minimum log level
func (s *Service) SetLevel(level Level) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

// Close closes the log file if open
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.logger.SetOutput(io.Discard)
		return err
	}
	return nil
}

// Debug logs a debug message
func (s *Service) Debug(format string, args ...interface{}) {
	s.log(LevelDebug, format, args...)
}

// Info logs an info message
func (s *Service) Info(format string, args ...interface{}) {
	s.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (s *Service) Warn(format string, args ...interface{}) {
	s.log(LevelWarn, format, args...)
}

// Error logs an error message
func (s *Service) Error(format string, args ...interface{}) {
	s.log(LevelError, format, args...)
}

func (s *Service) log(level Level, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	fileInfo := "unknown:0"
	if ok {
		fileInfo = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	now := time.Now()
	timestamp := fmt.Sprintf("%s,%03d",
		now.Format("2006-01-02 15:04:05"),
		now.Nanosecond()/1000000)

	// Pad file info to a consistent width so messages line up
	if len(fileInfo) < 23 {
		fileInfo += strings.Repeat(" ", 23-len(fileInfo))
	}

	// timestamp [pid] LEVEL - file:line - message
	s.logger.Printf("%s [%d] %-5s - %s - %s",
		timestamp, s.pid, level, fileInfo, fmt.Sprintf(format, args...))
}

// String returns the upper-case level name
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFile returns the path to the log file
func (s *Service) LogFile() string {
	return s.logFile
}

// Nop discards everything. Useful for providers constructed outside an engine.
type Nop struct{}

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) SetLevel(Level)               {}

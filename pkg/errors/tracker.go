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

package errors

import (
	"runtime"
	"strings"
	"time"
)

// TrackedError wraps errors with automatic function call chain tracking
type TrackedError struct {
	Original    error                  `json:"original_error"`
	RootCause   error                  `json:"root_cause"`
	CallChain   []FunctionCall         `json:"call_chain"`
	Context     map[string]interface{} `json:"context,omitempty"`
	UserMessage string                 `json:"user_message,omitempty"`
	Category    ErrorCategory          `json:"category"`
	StackTrace  []StackFrame           `json:"stack_trace,omitempty"`
}

// FunctionCall represents a single function in the call chain
type FunctionCall struct {
	Function  string    `json:"function"`
	ShortName string    `json:"short_name"`
	Package   string    `json:"package"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation,omitempty"`
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// ErrorCategory helps classify different types of errors
type ErrorCategory string

const (
	CategoryNetwork    ErrorCategory = "network"
	CategoryProvider   ErrorCategory = "provider"
	CategoryParsing    ErrorCategory = "parsing"
	CategoryValidation ErrorCategory = "validation"
	CategoryTimeout    ErrorCategory = "timeout"
	CategoryAuth       ErrorCategory = "authentication"
	CategoryRateLimit  ErrorCategory = "rate_limit"
	CategoryNotFound   ErrorCategory = "not_found"
	CategoryPanic      ErrorCategory = "panic"
	CategoryUnknown    ErrorCategory = "unknown"
)

func (e *TrackedError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	if e.Original != nil {
		return e.Original.Error()
	}
	return "unknown error"
}

func (e *TrackedError) Unwrap() error {
	return e.Original
}

// GetFunctionChain returns the function call path as a string
func (e *TrackedError) GetFunctionChain() string {
	if len(e.CallChain) == 0 {
		return ""
	}

	functions := make([]string, len(e.CallChain))
	for i, call := range e.CallChain {
		functions[i] = call.ShortName
	}

	return strings.Join(functions, " -> ")
}

// IsCategory checks if error belongs to a specific category
func (e *TrackedError) IsCategory(category ErrorCategory) bool {
	return e.Category == category
}

// GetContext returns the context data associated with the error
func (e *TrackedError) GetContext() map[string]interface{} {
	if e.Context == nil {
		return make(map[string]interface{})
	}
	return e.Context
}

// trackError records the calling function, either starting a new chain or
// extending an existing one. The category of an existing chain is preserved.
func trackError(err error) *TrackedError {
	call := callerFrame()

	var existing *TrackedError
	if As(err, &existing) {
		if call != nil {
			existing.CallChain = append(existing.CallChain, *call)
		}
		return existing
	}

	tracked := &TrackedError{
		Original:   err,
		RootCause:  findRootCause(err),
		Context:    make(map[string]interface{}),
		Category:   classifyError(err),
		StackTrace: captureStackTrace(),
	}
	if call != nil {
		tracked.CallChain = []FunctionCall{*call}
	}
	return tracked
}

func callerFrame() *FunctionCall {
	pc, file, line, ok := getCaller()
	if !ok {
		return nil
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return nil
	}

	fullName := fn.Name()
	short := extractShortFunctionName(fullName)
	return &FunctionCall{
		Function:  fullName,
		ShortName: short,
		Package:   extractPackageName(fullName),
		File:      extractFileName(file),
		Line:      line,
		Timestamp: time.Now(),
		Operation: detectOperation(short),
	}
}

// getCaller walks up the stack to find the first non-tracking function
func getCaller() (uintptr, string, int, bool) {
	internalPatterns := []string{
		"pkg/errors/tracker.go",
		"pkg/errors/builder.go",
		"pkg/errors/simple.go",
		"pkg/errors/errors.go",
	}

	for i := 1; i < 12; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		isInternal := false
		for _, pattern := range internalPatterns {
			if strings.Contains(file, pattern) {
				isInternal = true
				break
			}
		}

		if !isInternal {
			return pc, file, line, true
		}
	}

	return 0, "", 0, false
}

func extractShortFunctionName(fullName string) string {
	idx := strings.LastIndex(fullName, ".")
	if idx == -1 {
		return fullName
	}

	shortName := fullName[idx+1:]

	// Methods look like "pkg.(*Provider).GetChapters"
	if start := strings.LastIndex(fullName, "(*"); start != -1 {
		if end := strings.Index(fullName[start:], ")."); end != -1 {
			return fullName[start+2:start+end] + "." + shortName
		}
	}

	return shortName
}

func extractPackageName(fullName string) string {
	if slash := strings.LastIndex(fullName, "/"); slash != -1 {
		fullName = fullName[slash+1:]
	}
	if dot := strings.Index(fullName, "."); dot != -1 {
		return fullName[:dot]
	}
	return "unknown"
}

func extractFileName(fullPath string) string {
	if idx := strings.LastIndex(fullPath, "/"); idx != -1 {
		return fullPath[idx+1:]
	}
	return fullPath
}

func detectOperation(functionName string) string {
	lower := strings.ToLower(functionName)

	switch {
	case strings.Contains(lower, "search"):
		return "search"
	case strings.Contains(lower, "home"), strings.Contains(lower, "viewmore"):
		return "home"
	case strings.Contains(lower, "get"), strings.Contains(lower, "fetch"):
		return "get"
	case strings.Contains(lower, "parse"), strings.Contains(lower, "decode"):
		return "parse"
	case strings.Contains(lower, "http"), strings.Contains(lower, "request"):
		return "http_request"
	default:
		return ""
	}
}

func classifyError(err error) ErrorCategory {
	if err == nil {
		return CategoryUnknown
	}

	switch {
	case Is(err, ErrParse):
		return CategoryParsing
	case Is(err, ErrNotFound):
		return CategoryNotFound
	case Is(err, ErrInvalidSection), Is(err, ErrInvalidInput):
		return CategoryValidation
	case Is(err, ErrRateLimit):
		return CategoryRateLimit
	case Is(err, ErrUnauthorized):
		return CategoryAuth
	case Is(err, ErrTimeout):
		return CategoryTimeout
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case isTimeoutError(errStr):
		return CategoryTimeout
	case isNetworkError(errStr):
		return CategoryNetwork
	case isParsingError(errStr):
		return CategoryParsing
	default:
		return CategoryUnknown
	}
}

func isNetworkError(errStr string) bool {
	networkPatterns := []string{
		"dial tcp", "connection refused", "no such host", "network is unreachable",
		"connection reset", "tls", "certificate", "dns", "no route to host", "eof",
	}

	for _, pattern := range networkPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

func isParsingError(errStr string) bool {
	parsingPatterns := []string{
		"json", "unmarshal", "invalid character", "unexpected end", "syntax error",
	}

	for _, pattern := range parsingPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

func isTimeoutError(errStr string) bool {
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func captureStackTrace() []StackFrame {
	var frames []StackFrame

	for i := 3; i < 23; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     extractFileName(file),
			Line:     line,
		})
	}

	return frames
}

func findRootCause(err error) error {
	root := err
	for {
		unwrapped := Unwrap(root)
		if unwrapped == nil {
			return root
		}
		root = unwrapped
	}
}

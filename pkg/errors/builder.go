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
	"context"
	"fmt"
)

// ErrorBuilder provides a fluent interface for building tracked errors
type ErrorBuilder struct {
	err *TrackedError
}

// Track wraps any error with automatic tracking and returns a builder
func Track(err error) *ErrorBuilder {
	if err == nil {
		return nil
	}
	return &ErrorBuilder{err: trackError(err)}
}

// New creates a new error with tracking
func New(message string) *ErrorBuilder {
	return Track(fmt.Errorf("%s", message))
}

// Newf creates a new formatted error with tracking
func Newf(format string, args ...interface{}) *ErrorBuilder {
	return Track(fmt.Errorf(format, args...))
}

// WithContext adds context data to the error
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	b.err.Context[key] = value
	return b
}

// WithMessage sets a user-friendly message
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	b.err.UserMessage = message
	return b
}

// WithMessagef sets a formatted user-friendly message
func (b *ErrorBuilder) WithMessagef(format string, args ...interface{}) *ErrorBuilder {
	return b.WithMessage(fmt.Sprintf(format, args...))
}

// AsCategory sets the error category
func (b *ErrorBuilder) AsCategory(category ErrorCategory) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	b.err.Category = category
	return b
}

// DefaultCategory sets the category only when none was detected
func (b *ErrorBuilder) DefaultCategory(category ErrorCategory) *ErrorBuilder {
	if b == nil || b.err == nil || b.err.Category != CategoryUnknown {
		return b
	}
	return b.AsCategory(category)
}

// AsNetwork marks the error as network-related
func (b *ErrorBuilder) AsNetwork() *ErrorBuilder {
	return b.AsCategory(CategoryNetwork)
}

// AsParser marks the error as parsing-related
func (b *ErrorBuilder) AsParser() *ErrorBuilder {
	return b.AsCategory(CategoryParsing)
}

// AsProvider marks the error as provider-related
func (b *ErrorBuilder) AsProvider(providerID string) *ErrorBuilder {
	return b.
		AsCategory(CategoryProvider).
		WithContext("provider_id", providerID)
}

// AsTimeout marks the error as timeout-related
func (b *ErrorBuilder) AsTimeout() *ErrorBuilder {
	return b.AsCategory(CategoryTimeout)
}

// AsNotFound marks the error as not-found
func (b *ErrorBuilder) AsNotFound() *ErrorBuilder {
	return b.AsCategory(CategoryNotFound)
}

// AsRateLimit marks the error as rate-limit-related
func (b *ErrorBuilder) AsRateLimit() *ErrorBuilder {
	return b.AsCategory(CategoryRateLimit)
}

// Error returns the tracked error
func (b *ErrorBuilder) Error() error {
	if b == nil || b.err == nil {
		return nil
	}
	return b.err
}

// String implements fmt.Stringer
func (b *ErrorBuilder) String() string {
	if b == nil || b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Wrap wraps this error with additional context
func (b *ErrorBuilder) Wrap(message string) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	wrapped := &TrackedError{
		Original:   fmt.Errorf("%s: %w", message, b.err),
		RootCause:  b.err.RootCause,
		CallChain:  b.err.CallChain,
		Context:    b.err.Context,
		Category:   b.err.Category,
		StackTrace: b.err.StackTrace,
	}
	return &ErrorBuilder{err: wrapped}
}

// WithHTTPContext adds HTTP-related context
func (b *ErrorBuilder) WithHTTPContext(method, url string, statusCode int) *ErrorBuilder {
	return b.
		WithContext("method", method).
		WithContext("url", url).
		WithContext("status_code", statusCode)
}

// FromContext creates an error from a context
func FromContext(ctx context.Context) *ErrorBuilder {
	err := ctx.Err()
	if err == nil {
		return nil
	}

	builder := Track(err).AsTimeout()
	if Is(err, context.Canceled) {
		return builder.WithMessage("Operation was cancelled")
	}
	return builder.WithMessage("Operation timed out")
}

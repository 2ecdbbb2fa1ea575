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

package rpc

import (
	"fmt"
	"strings"
	"time"

	"Olympus/pkg/errors"
)

// Error is the error value returned to RPC clients. net/rpc only transports
// the message, so the code is part of it.
type Error struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`

	FunctionChain string               `json:"function_chain,omitempty"`
	ErrorCategory errors.ErrorCategory `json:"error_category,omitempty"`
	RootCause     string               `json:"root_cause,omitempty"`
	Timestamp     time.Time            `json:"timestamp"`

	Service string `json:"service,omitempty"`
	Method  string `json:"method,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("RPC Error %d: %s", e.Code, e.Message)
}

const (
	// Input/Validation errors (1000-1099)
	ErrCodeInvalidInput   = -1001
	ErrCodeInvalidSection = -1002

	// Resource/Provider errors (1100-1199)
	ErrCodeProviderNotFound = -1101
	ErrCodeResourceNotFound = -1102
	ErrCodeProviderError    = -1103

	// Network errors (2000-2099)
	ErrCodeNetworkUnavailable = -2001
	ErrCodeNetworkTimeout     = -2002
	ErrCodeConnectionFailed   = -2003
	ErrCodeDNSFailure         = -2004
	ErrCodeHTTPError          = -2005

	// Timeout errors (2100-2199)
	ErrCodeTimeout         = -2101
	ErrCodeContextCanceled = -2103

	// Authentication/Authorization (2200-2299)
	ErrCodeRateLimited  = -2202
	ErrCodeUnauthorized = -2204

	// Parsing/Data errors (3000-3099)
	ErrCodeParsingFailed = -3001
	ErrCodeJSONError     = -3004

	// System errors (9000-9099)
	ErrCodePanic         = -9001
	ErrCodeInternalError = -9002
	ErrCodeUnknownError  = -9099
)

// NewError converts err into an RPC error, keeping its tracking data
func NewError(err error, service, method string, requestData map[string]interface{}) *Error {
	rpcError := &Error{
		Data:      make(map[string]interface{}),
		Timestamp: time.Now(),
		Service:   service,
		Method:    method,
	}
	for k, v := range requestData {
		rpcError.Data[k] = v
	}

	var tracked *errors.TrackedError
	if !errors.As(err, &tracked) {
		rpcError.Message = err.Error()
		rpcError.RootCause = err.Error()
		rpcError.ErrorCategory = errors.CategoryUnknown
		rpcError.Code = ErrCodeUnknownError
		return rpcError
	}

	rpcError.Message = tracked.Error()
	rpcError.FunctionChain = tracked.GetFunctionChain()
	rpcError.ErrorCategory = tracked.Category
	if tracked.RootCause != nil {
		rpcError.RootCause = tracked.RootCause.Error()
	}
	for k, v := range tracked.GetContext() {
		rpcError.Data[k] = v
	}
	rpcError.Code = determineErrorCode(tracked)
	return rpcError
}

func determineErrorCode(tracked *errors.TrackedError) int {
	// sentinels are more precise than categories
	switch {
	case errors.IsInvalidSection(tracked):
		return ErrCodeInvalidSection
	case errors.IsRateLimited(tracked):
		return ErrCodeRateLimited
	case errors.IsUnauthorized(tracked):
		return ErrCodeUnauthorized
	}

	message := ""
	if tracked.Original != nil {
		message = strings.ToLower(tracked.Original.Error())
	}

	switch tracked.Category {
	case errors.CategoryNetwork:
		switch {
		case strings.Contains(message, "no such host"), strings.Contains(message, "dns"):
			return ErrCodeDNSFailure
		case strings.Contains(message, "connection refused"):
			return ErrCodeConnectionFailed
		case strings.Contains(message, "timeout"), strings.Contains(message, "deadline"):
			return ErrCodeNetworkTimeout
		case strings.Contains(message, "http "):
			return ErrCodeHTTPError
		default:
			return ErrCodeNetworkUnavailable
		}

	case errors.CategoryTimeout:
		if strings.Contains(message, "canceled") {
			return ErrCodeContextCanceled
		}
		return ErrCodeTimeout

	case errors.CategoryParsing:
		if strings.Contains(message, "json") {
			return ErrCodeJSONError
		}
		return ErrCodeParsingFailed

	case errors.CategoryValidation:
		return ErrCodeInvalidInput

	case errors.CategoryAuth:
		return ErrCodeUnauthorized

	case errors.CategoryRateLimit:
		return ErrCodeRateLimited

	case errors.CategoryNotFound:
		if _, ok := tracked.Context["available_providers"]; ok {
			return ErrCodeProviderNotFound
		}
		return ErrCodeResourceNotFound

	case errors.CategoryPanic:
		return ErrCodePanic

	case errors.CategoryProvider:
		return ErrCodeProviderError

	default:
		return ErrCodeInternalError
	}
}

// Failed wraps a source failure for the given service method
func Failed(err error, service, method string, requestData map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return NewError(errors.T(err), service, method, requestData)
}

// InvalidInput reports a missing or malformed request field
func InvalidInput(service, method, field, value string) *Error {
	baseErr := errors.Track(errors.ErrInvalidInput).
		WithMessagef("invalid value '%s' for field '%s'", value, field).
		AsCategory(errors.CategoryValidation).
		Error()
	return NewError(baseErr, service, method, map[string]interface{}{
		"invalid_field": field,
		"invalid_value": value,
	})
}

// IsNetworkIssue checks if error is network-related
func (e *Error) IsNetworkIssue() bool {
	return e.ErrorCategory == errors.CategoryNetwork ||
		(e.Code <= ErrCodeNetworkUnavailable && e.Code >= ErrCodeHTTPError)
}

// IsTimeout checks if error is timeout-related
func (e *Error) IsTimeout() bool {
	return e.ErrorCategory == errors.CategoryTimeout ||
		(e.Code <= ErrCodeTimeout && e.Code >= ErrCodeContextCanceled)
}

// GetSuggestedAction returns a hint for the host to show
func (e *Error) GetSuggestedAction() string {
	switch {
	case e.Code == ErrCodeInvalidSection:
		return "Only the new_chapters section can be paged"
	case e.IsNetworkIssue():
		return "Check your internet connection and try again"
	case e.IsTimeout():
		return "The operation took too long. Try again or increase the timeout"
	case e.ErrorCategory == errors.CategoryParsing:
		return "The response format was unexpected. The site may be under maintenance"
	case e.Code == ErrCodeResourceNotFound:
		return "Check the manga or chapter id"
	default:
		return "An unexpected error occurred. Please try again"
	}
}

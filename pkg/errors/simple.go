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
	"fmt"
	"sort"
	"strings"
)

// SIMPLE API - These are the only functions you need in most cases

// T (Track) - Wrap any error and record the calling function
func T(err error) error {
	if err == nil {
		return nil
	}
	return Track(err).Error()
}

// TM (Track with Message) - Add a user-friendly message
func TM(err error, message string) error {
	if err == nil {
		return nil
	}
	return Track(err).WithMessage(message).Error()
}

// TN (Track Network) - For network/HTTP errors. Keeps a more specific
// category when one was already detected.
func TN(err error) error {
	if err == nil {
		return nil
	}
	return Track(err).DefaultCategory(CategoryNetwork).Error()
}

// TP (Track Provider) - For provider-specific errors
func TP(err error, providerID string) error {
	if err == nil {
		return nil
	}
	return Track(err).
		WithContext("provider_id", providerID).
		DefaultCategory(CategoryProvider).
		Error()
}

// ANALYSIS FUNCTIONS

// IsNetwork - Check if error is network-related
func IsNetwork(err error) bool {
	return GetCategory(err) == CategoryNetwork
}

// IsParsing - Check if error is parsing-related
func IsParsing(err error) bool {
	return GetCategory(err) == CategoryParsing
}

// GetCategory - Get error category
func GetCategory(err error) ErrorCategory {
	var te *TrackedError
	if As(err, &te) {
		return te.Category
	}
	if err != nil {
		return classifyError(err)
	}
	return CategoryUnknown
}

// GetContext - Get error context data
func GetContext(err error) map[string]interface{} {
	var te *TrackedError
	if As(err, &te) {
		return te.GetContext()
	}
	return nil
}

// FORMATTING FUNCTIONS

// FormatChain - Human-readable error chain
func FormatChain(err error) string {
	var te *TrackedError
	if !As(err, &te) {
		return err.Error()
	}

	parts := []string{fmt.Sprintf("Error: %s", te.Error())}

	if len(te.CallChain) > 0 {
		parts = append(parts, "\nFunction Call Chain:")
		for i, call := range te.CallChain {
			parts = append(parts, fmt.Sprintf("  %d. [%s] %s() at %s:%d",
				i+1, call.Timestamp.Format("15:04:05.000"), call.ShortName, call.File, call.Line))
			if call.Operation != "" {
				parts = append(parts, fmt.Sprintf("      Operation: %s", call.Operation))
			}
		}
	}

	if te.Category != CategoryUnknown {
		parts = append(parts, fmt.Sprintf("\nCategory: %s", te.Category))
	}

	if te.RootCause != nil && !Is(te.RootCause, te.Original) {
		parts = append(parts, fmt.Sprintf("Root Cause: %v", te.RootCause))
	}

	if len(te.Context) > 0 {
		parts = append(parts, "\nAdditional Context: "+formatContext(te.Context))
	}

	return strings.Join(parts, "\n")
}

// FormatSimple - Simple one-line error format
func FormatSimple(err error) string {
	var te *TrackedError
	if !As(err, &te) {
		return err.Error()
	}

	chain := te.GetFunctionChain()
	if chain == "" {
		return err.Error()
	}

	return fmt.Sprintf("[%s] %s: %s", te.Category, chain, err.Error())
}

func formatContext(ctx map[string]interface{}) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = fmt.Sprintf("%s=%v", k, ctx[k])
	}
	return strings.Join(items, ", ")
}

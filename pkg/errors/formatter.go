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
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

//go:embed suggestions.json
var suggestionFS embed.FS

// SuggestionsMap holds suggestions for different error categories
type SuggestionsMap map[string][]string

// CLIFormatter provides user-friendly error formatting for command-line interface
type CLIFormatter struct {
	// ShowDebugInfo controls whether to show root cause, context and stack
	ShowDebugInfo bool

	// ShowFunctionChain controls whether to show the function call chain
	ShowFunctionChain bool

	Suggestions SuggestionsMap

	ErrorStyle      *color.Color
	NetworkStyle    *color.Color
	ParsingStyle    *color.Color
	NotFoundStyle   *color.Color
	ValidationStyle *color.Color
	TimeoutStyle    *color.Color

	HeaderStyle      *color.Color
	SectionStyle     *color.Color
	DetailLabelStyle *color.Color
	DetailValueStyle *color.Color
	HighlightStyle   *color.Color
	SecondaryStyle   *color.Color
}

// NewCLIFormatter creates a new CLI error formatter with default settings
func NewCLIFormatter() *CLIFormatter {
	f := &CLIFormatter{Suggestions: make(SuggestionsMap)}
	f.initStyles()
	f.loadSuggestions()
	return f
}

// NewDebugCLIFormatter creates a CLI formatter with debug information enabled
func NewDebugCLIFormatter() *CLIFormatter {
	f := NewCLIFormatter()
	f.ShowDebugInfo = true
	f.ShowFunctionChain = true
	return f
}

func (f *CLIFormatter) initStyles() {
	f.ErrorStyle = color.New(color.FgRed)
	f.NetworkStyle = color.New(color.FgYellow)
	f.ParsingStyle = color.New(color.FgMagenta)
	f.NotFoundStyle = color.New(color.FgCyan)
	f.ValidationStyle = color.New(color.FgHiRed)
	f.TimeoutStyle = color.New(color.FgYellow)

	f.HeaderStyle = color.New(color.Bold, color.FgCyan)
	f.SectionStyle = color.New(color.Underline, color.FgHiCyan)
	f.DetailLabelStyle = color.New(color.FgHiBlue)
	f.DetailValueStyle = color.New(color.FgWhite)
	f.HighlightStyle = color.New(color.FgMagenta)
	f.SecondaryStyle = color.New(color.FgHiBlack)
}

func (f *CLIFormatter) loadSuggestions() {
	data, err := suggestionFS.ReadFile("suggestions.json")
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &f.Suggestions); err != nil {
		f.Suggestions = make(SuggestionsMap)
	}
}

// Format formats an error for CLI display
func (f *CLIFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var tracked *TrackedError
	if !As(err, &tracked) {
		return fmt.Sprintf("%s %s", f.HeaderStyle.Sprint("[ERROR]"), f.ErrorStyle.Sprint(err.Error()))
	}

	parts := []string{f.formatMainMessage(tracked)}

	if guidance := f.formatGuidance(tracked); guidance != "" {
		parts = append(parts, "", guidance)
	}

	if f.ShowFunctionChain && len(tracked.CallChain) > 0 {
		parts = append(parts, "", f.formatFunctionChain(tracked))
	}

	if f.ShowDebugInfo {
		parts = append(parts, "", f.formatDebugInfo(tracked))
	}

	return strings.Join(parts, "\n")
}

// FormatSimple provides a one-line error format for simple display
func (f *CLIFormatter) FormatSimple(err error) string {
	if err == nil {
		return ""
	}

	var tracked *TrackedError
	if !As(err, &tracked) {
		return err.Error()
	}

	return fmt.Sprintf("%s %s", f.categoryPrefix(tracked.Category),
		f.categoryStyle(tracked.Category).Sprint(tracked.Error()))
}

func (f *CLIFormatter) formatMainMessage(tracked *TrackedError) string {
	return fmt.Sprintf("%s %s",
		f.HeaderStyle.Sprint(f.categoryPrefix(tracked.Category)),
		f.categoryStyle(tracked.Category).Sprint(tracked.Error()))
}

func (f *CLIFormatter) formatGuidance(tracked *TrackedError) string {
	suggestions := f.Suggestions[string(tracked.Category)]
	if len(suggestions) == 0 {
		return ""
	}

	lines := []string{f.SectionStyle.Sprint("Troubleshooting suggestions:")}
	for _, s := range suggestions {
		lines = append(lines, "  - "+f.DetailValueStyle.Sprint(s))
	}

	if url, ok := tracked.Context["url"].(string); ok && url != "" {
		lines = append(lines, "", fmt.Sprintf("Failed URL: %s", f.DetailValueStyle.Sprint(url)))
	}

	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatFunctionChain(tracked *TrackedError) string {
	parts := []string{f.SectionStyle.Sprint("Function Call Chain:")}
	for i, call := range tracked.CallChain {
		parts = append(parts, fmt.Sprintf("  %d. %s() at %s:%s",
			i+1, f.HighlightStyle.Sprint(call.ShortName),
			f.SecondaryStyle.Sprint(call.File), f.SecondaryStyle.Sprint(call.Line)))
		if call.Operation != "" {
			parts = append(parts, fmt.Sprintf("      Operation: %s", f.DetailValueStyle.Sprint(call.Operation)))
		}
	}
	return strings.Join(parts, "\n")
}

func (f *CLIFormatter) formatDebugInfo(tracked *TrackedError) string {
	parts := []string{f.SectionStyle.Sprint("Debug Information")}

	if tracked.Original != nil {
		parts = append(parts, fmt.Sprintf("%s %s",
			f.DetailLabelStyle.Sprint("Original Error:"),
			f.DetailValueStyle.Sprint(tracked.Original.Error())))
	}

	if tracked.RootCause != nil && !Is(tracked.RootCause, tracked.Original) {
		parts = append(parts, fmt.Sprintf("%s %s",
			f.DetailLabelStyle.Sprint("Root Cause:"),
			f.DetailValueStyle.Sprint(tracked.RootCause.Error())))
	}

	if len(tracked.Context) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s",
			f.DetailLabelStyle.Sprint("Context:"),
			f.DetailValueStyle.Sprint(formatContext(tracked.Context))))
	}

	for i, frame := range tracked.StackTrace {
		parts = append(parts, fmt.Sprintf("  %d. %s at %s:%d",
			i+1, f.HighlightStyle.Sprint(frame.Function), frame.File, frame.Line))
	}

	return strings.Join(parts, "\n")
}

func (f *CLIFormatter) categoryPrefix(category ErrorCategory) string {
	switch category {
	case CategoryNetwork:
		return "[NETWORK]"
	case CategoryProvider:
		return "[PROVIDER]"
	case CategoryParsing:
		return "[PARSING]"
	case CategoryNotFound:
		return "[NOT FOUND]"
	case CategoryValidation:
		return "[INVALID]"
	case CategoryRateLimit:
		return "[RATE LIMIT]"
	case CategoryTimeout:
		return "[TIMEOUT]"
	default:
		return "[ERROR]"
	}
}

func (f *CLIFormatter) categoryStyle(category ErrorCategory) *color.Color {
	switch category {
	case CategoryNetwork, CategoryRateLimit:
		return f.NetworkStyle
	case CategoryParsing:
		return f.ParsingStyle
	case CategoryNotFound:
		return f.NotFoundStyle
	case CategoryValidation:
		return f.ValidationStyle
	case CategoryTimeout:
		return f.TimeoutStyle
	default:
		return f.ErrorStyle
	}
}

// Global formatters for easy use
var (
	DefaultCLIFormatter = NewCLIFormatter()
	DebugCLIFormatter   = NewDebugCLIFormatter()
)

// FormatCLI formats an error with guidance for CLI display
func FormatCLI(err error) string {
	return DefaultCLIFormatter.Format(err)
}

// FormatCLISimple formats an error for simple CLI display
func FormatCLISimple(err error) string {
	return DefaultCLIFormatter.FormatSimple(err)
}

// FormatCLIDebug formats an error with debug information
func FormatCLIDebug(err error) string {
	return DebugCLIFormatter.Format(err)
}

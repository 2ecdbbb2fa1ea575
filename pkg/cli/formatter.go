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

package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"Olympus/pkg/core"
	pkgerrors "Olympus/pkg/errors"
	"Olympus/pkg/provider"
	"Olympus/pkg/util"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

func titleCase(s string) string {
	return titleCaser.String(s)
}

const (
	OutputTypeText  = "text"
	OutputTypeTable = "table"
)

// Formatter handles all CLI output formatting
type Formatter struct {
	// Writer is where the formatted output will be written
	Writer io.Writer

	// DisableColor disables colorized output
	DisableColor bool

	// OutputType controls the type of output (text, table, simple)
	OutputType string

	// Styles for different elements
	HeaderStyle      *color.Color
	TitleStyle       *color.Color
	SubtitleStyle    *color.Color
	SuccessStyle     *color.Color
	ErrorStyle       *color.Color
	WarningStyle     *color.Color
	InfoStyle        *color.Color
	HighlightStyle   *color.Color
	SecondaryStyle   *color.Color
	ImportantStyle   *color.Color
	SectionStyle     *color.Color
	DetailLabelStyle *color.Color
	DetailValueStyle *color.Color
	CommandStyle     *color.Color
	IDStyle          *color.Color
	PathStyle        *color.Color
	ParameterStyle   *color.Color
	DateStyle        *color.Color
	NumberStyle      *color.Color
}

// NewFormatter creates a new CLI formatter with default settings
func NewFormatter() *Formatter {
	f := &Formatter{
		Writer:       os.Stdout,
		DisableColor: false,
		OutputType:   OutputTypeText,
	}

	// Initialize styles
	f.initStyles()

	return f
}

// initStyles sets up all the color styles
func (f *Formatter) initStyles() {
	// Don't use color if it's disabled
	if f.DisableColor {
		color.NoColor = true
	}

	// Configure styles
	f.HeaderStyle = color.New(color.Bold, color.FgCyan)
	f.TitleStyle = color.New(color.Bold, color.FgWhite)
	f.SubtitleStyle = color.New(color.FgHiWhite)
	f.SuccessStyle = color.New(color.FgGreen)
	f.ErrorStyle = color.New(color.FgRed)
	f.WarningStyle = color.New(color.FgYellow)
	f.InfoStyle = color.New(color.FgBlue)
	f.HighlightStyle = color.New(color.FgMagenta)
	f.SecondaryStyle = color.New(color.FgHiBlack)
	f.ImportantStyle = color.New(color.Bold, color.FgHiWhite)
	f.SectionStyle = color.New(color.Underline, color.FgHiCyan)
	f.DetailLabelStyle = color.New(color.FgHiBlue)
	f.DetailValueStyle = color.New(color.FgWhite)
	f.CommandStyle = color.New(color.FgHiYellow)
	f.IDStyle = color.New(color.FgHiMagenta)
	f.PathStyle = color.New(color.FgHiGreen)
	f.ParameterStyle = color.New(color.FgHiCyan)
	f.DateStyle = color.New(color.FgHiBlue)
	f.NumberStyle = color.New(color.FgHiYellow)
}

// PrintHeader prints a header section
func (f *Formatter) PrintHeader(text string) {
	_, err := f.HeaderStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
	f.PrintDivider()
}

// PrintTitle prints a title
func (f *Formatter) PrintTitle(text string) {
	_, err := f.TitleStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintSubtitle prints a subtitle
func (f *Formatter) PrintSubtitle(text string) {
	_, err := f.SubtitleStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintSuccess prints a success message
func (f *Formatter) PrintSuccess(text string) {
	_, err := f.SuccessStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintError prints an error message
func (f *Formatter) PrintError(text string) {
	_, err := f.ErrorStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintWarning prints a warning message
func (f *Formatter) PrintWarning(text string) {
	_, err := f.WarningStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintInfo prints an informational message
func (f *Formatter) PrintInfo(text string) {
	_, err := f.InfoStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
}

// PrintDetail prints a labeled detail
func (f *Formatter) PrintDetail(label, value string) {
	_, err := f.DetailLabelStyle.Fprintf(f.Writer, "%s: ", label)
	if err != nil {
		return
	}
	_, err = f.DetailValueStyle.Fprintln(f.Writer, value)
	if err != nil {
		return
	}
}

// PrintDivider prints a horizontal divider
func (f *Formatter) PrintDivider() {
	_, err := fmt.Fprintln(f.Writer, strings.Repeat("-", 80))
	if err != nil {
		return
	}
}

// PrintSection prints a section header
func (f *Formatter) PrintSection(text string) {
	_, err := fmt.Fprintln(f.Writer, "")
	if err != nil {
		return
	}
	_, err = f.SectionStyle.Fprintln(f.Writer, text)
	if err != nil {
		return
	}
	_, err = fmt.Fprintln(f.Writer, "")
	if err != nil {
		return
	}
}

// PrintNewLine prints a blank line
func (f *Formatter) PrintNewLine() {
	_, err := fmt.Fprintln(f.Writer, "")
	if err != nil {
		return
	}
}

// FormatID formats an ID string
func (f *Formatter) FormatID(id string) string {
	return f.IDStyle.Sprint(id)
}

// FormatPath formats a file path
func (f *Formatter) FormatPath(path string) string {
	return f.PathStyle.Sprint(path)
}

// FormatDate formats a date with styling
func (f *Formatter) FormatDate(date *time.Time) string {
	if date == nil {
		return f.SecondaryStyle.Sprint("Not specified")
	}
	return f.DateStyle.Sprint(util.FormatDate(date))
}

// FormatNumber formats a number with styling
func (f *Formatter) FormatNumber(num interface{}) string {
	return f.NumberStyle.Sprintf("%v", num)
}

// FormatLanguage formats a language code with its flag
func (f *Formatter) FormatLanguage(code string) string {
	if code == "" {
		return f.SecondaryStyle.Sprint("Unknown")
	}
	if flag := util.LanguageFlag(code); flag != code {
		return fmt.Sprintf("%s %s", flag, f.DetailValueStyle.Sprint(code))
	}
	return f.DetailValueStyle.Sprint(code)
}

// PrintTable prints data in a table format
func (f *Formatter) PrintTable(headers []string, data [][]string) {
	table := tablewriter.NewTable(f.Writer)
	table.Configure(func(tableConfig *tablewriter.Config) {
		tableConfig.Header.Alignment.Global = tw.AlignLeft
		tableConfig.Row.Alignment.Global = tw.AlignLeft
		tableConfig.Header.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
		tableConfig.Row.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
	})

	table.Header(headers)
	if err := table.Bulk(data); err != nil {
		return
	}
	_ = table.Render()
}

// HandleError prints err and reports whether there was one
func (f *Formatter) HandleError(err error) bool {
	if err == nil {
		return false
	}

	var trackedError *pkgerrors.TrackedError
	if pkgerrors.As(err, &trackedError) {
		f.PrintError(pkgerrors.FormatCLI(err))
	} else {
		f.PrintError(fmt.Sprintf("[ERROR] %s", err.Error()))
	}
	return true
}

// PrintProviderList formats and prints a list of providers
func (f *Formatter) PrintProviderList(provs []provider.Provider) {
	f.PrintHeader("Available Content Sources")

	if len(provs) == 0 {
		f.PrintWarning("No providers available.")
		return
	}

	sort.Slice(provs, func(i, j int) bool {
		return provs[i].Name() < provs[j].Name()
	})

	if f.OutputType == OutputTypeTable {
		headers := []string{"ID", "NAME", "VERSION", "LANGUAGE", "SITE"}
		data := make([][]string, len(provs))
		for i, prov := range provs {
			info := prov.Info()
			data[i] = []string{info.ID, info.Name, info.Version, info.Language, prov.SiteURL()}
		}
		f.PrintTable(headers, data)
		return
	}

	for _, prov := range provs {
		info := prov.Info()
		_, _ = f.TitleStyle.Fprintf(f.Writer, "%s ", info.ID)
		_, _ = f.SecondaryStyle.Fprintf(f.Writer, "(%s %s, %s)\n", info.Name, info.Version, info.Language)
		_, _ = fmt.Fprintf(f.Writer, "  %s\n\n", prov.Description())
	}
}

// PrintVersionInfo formats and prints version information
func (f *Formatter) PrintVersionInfo(version, goVersion, os, arch, logFile string) {
	f.PrintHeader("Olympus Version Information")

	f.PrintDetail("Version", version)
	f.PrintDetail("Go version", goVersion)
	f.PrintDetail("OS/Arch", fmt.Sprintf("%s/%s", os, arch))

	if logFile != "" {
		f.PrintDetail("Log file", f.FormatPath(logFile))
	} else {
		f.PrintDetail("Logging to file", "disabled")
	}
}

// PrintMangaInfo prints the full details of a series
func (f *Formatter) PrintMangaInfo(manga *core.Manga, prov provider.Provider) {
	if manga == nil {
		f.PrintError("No manga information available.")
		return
	}

	f.PrintHeader(manga.Title())

	f.PrintDetail("ID", f.FormatID(manga.ID))
	f.PrintDetail("Provider", fmt.Sprintf("%s (%s)", prov.ID(), prov.Name()))
	if len(manga.Titles) > 1 {
		f.PrintDetail("Alternative Titles", strings.Join(manga.Titles[1:], ", "))
	}
	if manga.Author != "" {
		f.PrintDetail("Author", manga.Author)
	}
	f.PrintDetail("Status", manga.Status.String())
	if manga.ContentType != "" {
		f.PrintDetail("Type", string(manga.ContentType))
	}
	if manga.Cover != "" {
		f.PrintDetail("Cover", manga.Cover)
	}
	f.PrintDetail("Link", prov.GetMangaShareURL(manga.ID))

	for _, section := range manga.Tags {
		if len(section.Tags) == 0 {
			continue
		}
		labels := make([]string, len(section.Tags))
		for i, t := range section.Tags {
			labels[i] = t.Label
		}
		f.PrintDetail(titleCase(section.Label), strings.Join(labels, ", "))
	}

	if manga.Description != "" {
		f.PrintNewLine()
		_, _ = f.DetailLabelStyle.Fprintln(f.Writer, "Description:")
		_, _ = fmt.Fprintln(f.Writer, manga.Description)
	}
}

// PrintChapterList prints chapters in the order the source returned them
func (f *Formatter) PrintChapterList(chapters []core.ChapterInfo) {
	f.PrintSection(fmt.Sprintf("Chapters (%d)", len(chapters)))

	if len(chapters) == 0 {
		f.PrintWarning("No chapters available.")
		return
	}

	if f.OutputType == OutputTypeTable {
		data := make([][]string, len(chapters))
		for i, c := range chapters {
			data[i] = []string{c.ID, c.Title, fmt.Sprintf("%g", c.Number), util.FormatDate(c.Date), util.LanguageFlag(c.Language)}
		}
		f.PrintTable([]string{"ID", "TITLE", "NUMBER", "RELEASED", "LANG"}, data)
		return
	}

	for i, chapter := range chapters {
		f.PrintChapterItem(chapter, i+1)
	}
}

// PrintChapterItem prints information about a single chapter
func (f *Formatter) PrintChapterItem(chapter core.ChapterInfo, number int) {
	itemPrefix := ""
	if number > 0 {
		itemPrefix = fmt.Sprintf("%d. ", number)
	}

	title := chapter.Title
	if title == "" {
		title = fmt.Sprintf("Chapter %g", chapter.Number)
	}

	_, _ = f.TitleStyle.Fprintf(f.Writer, "%s%s ", itemPrefix, title)
	_, _ = f.IDStyle.Fprintf(f.Writer, "(ID: %s)\n", chapter.ID)

	_, _ = f.DetailLabelStyle.Fprintf(f.Writer, "  Released: ")
	_, _ = fmt.Fprint(f.Writer, f.FormatDate(chapter.Date))
	_, _ = f.SecondaryStyle.Fprintf(f.Writer, " | ")
	_, _ = f.DetailLabelStyle.Fprintf(f.Writer, "Language: ")
	_, _ = fmt.Fprintln(f.Writer, f.FormatLanguage(chapter.Language))
}

// PrintChapterPages prints the page image URLs of a chapter
func (f *Formatter) PrintChapterPages(details *core.ChapterDetails) {
	f.PrintHeader(fmt.Sprintf("Chapter %s of %s", details.ID, details.MangaID))

	if details.Degraded {
		f.PrintWarning("This chapter has no page images; a placeholder is shown instead.")
	}
	f.PrintDetail("Pages", f.FormatNumber(len(details.Pages)))
	f.PrintNewLine()

	for _, page := range details.Pages {
		_, _ = f.NumberStyle.Fprintf(f.Writer, "%4d  ", page.Index+1)
		_, _ = fmt.Fprintln(f.Writer, page.URL)
	}
}

// PrintPartialList prints search results or section items
func (f *Formatter) PrintPartialList(title string, items []core.PartialManga) {
	if title != "" {
		f.PrintSection(title)
	}

	if len(items) == 0 {
		f.PrintWarning("No manga found.")
		return
	}

	if f.OutputType == OutputTypeTable {
		data := make([][]string, len(items))
		for i, m := range items {
			data[i] = []string{m.ID, m.Title, m.Subtitle}
		}
		f.PrintTable([]string{"ID", "TITLE", "LATEST"}, data)
		return
	}

	for i, m := range items {
		_, _ = f.TitleStyle.Fprintf(f.Writer, "%d. %s ", i+1, m.Title)
		_, _ = f.IDStyle.Fprintf(f.Writer, "(ID: %s)\n", m.ID)
		if m.Subtitle != "" {
			_, _ = f.DetailLabelStyle.Fprintf(f.Writer, "  %s\n", m.Subtitle)
		}
	}
}

// FormatCommand formats a command line with its parameters
func (f *Formatter) FormatCommand(command string, params ...string) string {
	parts := []string{f.CommandStyle.Sprint(command)}
	for _, p := range params {
		parts = append(parts, f.ParameterStyle.Sprint(p))
	}
	return strings.Join(parts, " ")
}

// PrintHint prints a labelled command suggestion
func (f *Formatter) PrintHint(label, command string, params ...string) {
	_, _ = fmt.Fprintf(f.Writer, "%s %s\n", f.ImportantStyle.Sprint(label), f.FormatCommand(command, params...))
}

// PrintHomeSection prints one home page section
func (f *Formatter) PrintHomeSection(section core.HomeSection) {
	f.PrintPartialList(fmt.Sprintf("%s [%s]", section.Title, section.ID), section.Items)
	if section.ContainsMoreItems {
		f.PrintHint("More:", "olympus more", section.ID)
	}
}

// PrintPagedResults prints one page of results and the cursor for the next
func (f *Formatter) PrintPagedResults(title string, results *core.PagedResults) {
	f.PrintHeader(title)
	f.PrintPartialList("", results.Results)

	if results.Metadata != nil {
		f.PrintNewLine()
		if results.Metadata.Page > 0 {
			f.PrintHint("Next page:", "--page", fmt.Sprint(results.Metadata.Page))
		}
		if results.Metadata.Offset > 0 {
			f.PrintHint("Next page:", "--offset", fmt.Sprint(results.Metadata.Offset))
		}
	}
}

// PrintTagSections prints the available search filters
func (f *Formatter) PrintTagSections(sections []core.TagSection) {
	f.PrintHeader("Search Filters")

	for _, section := range sections {
		f.PrintSection(fmt.Sprintf("%s (%d)", titleCase(section.Label), len(section.Tags)))
		data := make([][]string, len(section.Tags))
		for i, t := range section.Tags {
			data[i] = []string{t.ID, t.Label}
		}
		f.PrintTable([]string{"ID", "LABEL"}, data)
	}
}

// DefaultFormatter Global instance for convenience
var DefaultFormatter = NewFormatter()

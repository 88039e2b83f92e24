package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/yearbump/pkg/sweep"
)

// summaryWidth is the width of the rule lines around the summary block
const summaryWidth = 60

// FileFormatter defines how file results and the run summary should be formatted
type FileFormatter interface {
	// FormatFileUpdated formats the progress line for a rewritten file
	FormatFileUpdated(path string, count int) string

	// FormatFileFailed formats the line for a file whose processing failed
	FormatFileFailed(path string, err error) string

	// FormatSummary formats the final summary block
	FormatSummary(summary sweep.Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileUpdated formats a progress line with the path and occurrence count
func (f *DefaultFileFormatter) FormatFileUpdated(path string, count int) string {
	noun := "replacements"
	if count == 1 {
		noun = "replacement"
	}
	return fmt.Sprintf("%s %s: %d %s", color.New(color.FgGreen).Sprint("✓"), path, count, noun)
}

// FormatFileFailed formats a failure line with the path and error message
func (f *DefaultFileFormatter) FormatFileFailed(path string, err error) string {
	return fmt.Sprintf("%s %s: %v", color.New(color.FgRed).Sprint("✗"), path, err)
}

// FormatSummary formats the final summary block
func (f *DefaultFileFormatter) FormatSummary(summary sweep.Summary) string {
	rule := strings.Repeat("=", summaryWidth)
	lines := []string{
		rule,
		"Summary:",
		fmt.Sprintf("  Files updated:      %d", summary.FilesUpdated),
		fmt.Sprintf("  Total replacements: %d", summary.TotalReplacements),
	}
	if summary.FilesFailed > 0 {
		lines = append(lines, fmt.Sprintf("  Files failed:       %d", summary.FilesFailed))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

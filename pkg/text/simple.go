package text

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using basic string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Binary or mis-encoded files are a per-file failure, never mangled in place
	if !utf8.Valid(originalContent) {
		return nil, errors.Errorf("content is not valid UTF-8 text")
	}

	// Create result with original content
	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule
	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		// Apply replacement
		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)

		// Update counts if changed
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, rule.FromText)
		}

		currentContent = newContent
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules. Beyond requiring
// from_text, it rejects rules whose to_text contains from_text, so that a
// second run over already-converged content always counts zero.
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.ToText == rule.FromText {
			return errors.Errorf("rule %d: to_text must differ from from_text", i)
		}
		if strings.Contains(rule.ToText, rule.FromText) {
			return errors.Errorf("rule %d: to_text must not contain from_text", i)
		}
	}
	return nil
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content

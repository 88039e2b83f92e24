package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/yearbump/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	// Create a replacer
	replacer := text.NewSimpleTextReplacer()

	// Define a replacement rule
	rules := []text.ReplacementRule{
		{
			FromText: "2025",
			ToText:   "2026",
		},
	}

	// Create some content
	content := strings.NewReader("Copyright 2025. Valid through 2025.")

	// Apply replacements
	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: Copyright 2025. Valid through 2025.
	// Modified: Copyright 2026. Valid through 2026.
	// Changes: 2
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ValidateRules() {
	// Create a replacer
	replacer := text.NewSimpleTextReplacer()

	// Define a rule whose target still contains the source
	rules := []text.ReplacementRule{
		{
			FromText: "2025",
			ToText:   "20256",
		},
	}

	// Validate rules
	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 0: to_text must not contain from_text
}

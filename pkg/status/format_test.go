package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/yearbump/pkg/sweep"
	"gitlab.com/tozd/go/errors"
)

func init() {
	// Keep assertions byte-exact regardless of terminal detection
	color.NoColor = true
}

// 🧪 TestDefaultFileFormatter_Lines tests the per-file line formats
func TestDefaultFileFormatter_Lines(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "updated_multiple",
			got:  f.FormatFileUpdated("guides/intro.mdx", 3),
			want: "✓ guides/intro.mdx: 3 replacements",
		},
		{
			name: "updated_single",
			got:  f.FormatFileUpdated("a.mdx", 1),
			want: "✓ a.mdx: 1 replacement",
		},
		{
			name: "failed",
			got:  f.FormatFileFailed("bin.mdx", errors.New("content is not valid UTF-8 text")),
			want: "✗ bin.mdx: content is not valid UTF-8 text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

// 🧪 TestDefaultFileFormatter_Summary tests the summary block
func TestDefaultFileFormatter_Summary(t *testing.T) {
	f := NewDefaultFileFormatter()

	t.Run("without_failures", func(t *testing.T) {
		got := f.FormatSummary(sweep.Summary{
			FilesScanned:      4,
			FilesUpdated:      2,
			TotalReplacements: 5,
		})
		assert.Contains(t, got, "Summary:")
		assert.Contains(t, got, "Files updated:      2")
		assert.Contains(t, got, "Total replacements: 5")
		assert.NotContains(t, got, "Files failed")
	})

	t.Run("with_failures", func(t *testing.T) {
		got := f.FormatSummary(sweep.Summary{
			FilesScanned:      3,
			FilesUpdated:      1,
			FilesFailed:       1,
			TotalReplacements: 1,
		})
		assert.Contains(t, got, "Files failed:       1")
	})
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/yearbump/pkg/sweep"
)

// 📄 FileResult is one tracked per-file outcome
type FileResult struct {
	Path         string // Path relative to the sweep root
	Replacements int    // Occurrence count (zero for failed files)
	Err          error  // Non-nil when processing failed
}

// 🔧 Manager tracks per-file results and writes the human-readable report.
// It implements sweep.Reporter.
type Manager struct {
	console   io.Writer
	formatter FileFormatter

	mu      sync.RWMutex
	results []FileResult
}

// 🏭 NewManager creates a new status manager writing to console
func NewManager(console io.Writer, formatter FileFormatter) *Manager {
	return &Manager{
		console:   console,
		formatter: formatter,
	}
}

// 📝 FileUpdated records and prints a rewritten file
func (m *Manager) FileUpdated(ctx context.Context, path string, count int) {
	m.track(FileResult{Path: path, Replacements: count})
	fmt.Fprintln(m.console, m.formatter.FormatFileUpdated(path, count))
	zerolog.Ctx(ctx).Info().
		Str("file", path).
		Int("replacements", count).
		Msg("file updated")
}

// 📝 FileFailed records and prints a failed file; failures stay inline in the
// output stream rather than being aggregated into a separate report
func (m *Manager) FileFailed(ctx context.Context, path string, err error) {
	m.track(FileResult{Path: path, Err: err})
	fmt.Fprintln(m.console, m.formatter.FormatFileFailed(path, err))
	zerolog.Ctx(ctx).Error().
		Str("file", path).
		Err(err).
		Msg("file failed")
}

// 📝 RunCompleted prints the final summary block
func (m *Manager) RunCompleted(ctx context.Context, summary sweep.Summary) {
	fmt.Fprintln(m.console, m.formatter.FormatSummary(summary))
	zerolog.Ctx(ctx).Info().
		Int("files_scanned", summary.FilesScanned).
		Int("files_updated", summary.FilesUpdated).
		Int("files_failed", summary.FilesFailed).
		Int("total_replacements", summary.TotalReplacements).
		Msg("run completed")
}

// 📋 Results returns a copy of the tracked per-file results in report order
func (m *Manager) Results() []FileResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FileResult, len(m.results))
	copy(out, m.results)
	return out
}

func (m *Manager) track(result FileResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

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

package sweep

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/yearbump/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary aggregates the results of one run
type Summary struct {
	FilesScanned      int // Files that matched the pattern and were opened
	FilesUpdated      int // Files with a non-zero occurrence count
	FilesFailed       int // Files whose read/decode/write failed
	TotalReplacements int // Sum of per-file occurrence counts
}

// 📈 Reporter receives per-file results and the run summary
type Reporter interface {
	// FileUpdated is called once per rewritten file with its occurrence count
	FileUpdated(ctx context.Context, path string, count int)
	// FileFailed is called once per file whose processing failed
	FileFailed(ctx context.Context, path string, err error)
	// RunCompleted is called once after the pass with the aggregate summary
	RunCompleted(ctx context.Context, summary Summary)
}

// 🔧 Options contains configuration for the sweeper
type Options struct {
	// Root is the directory to walk
	Root string
	// Pattern is a doublestar glob matched against root-relative paths
	Pattern string
	// Rule is the replacement to apply to each matched file
	Rule text.ReplacementRule
	// Replacer performs the replacement
	Replacer text.TextReplacer
	// Reporter receives results
	Reporter Reporter
}

// 🧹 Sweeper walks a directory tree and rewrites matched files in place
type Sweeper struct {
	root     string
	pattern  string
	rule     text.ReplacementRule
	replacer text.TextReplacer
	reporter Reporter
}

// 🏭 New creates a new sweeper with the given options
func New(opts Options) (*Sweeper, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if opts.Pattern == "" {
		return nil, errors.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(opts.Pattern) {
		return nil, errors.Errorf("invalid pattern %q", opts.Pattern)
	}
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if err := opts.Replacer.ValidateRules([]text.ReplacementRule{opts.Rule}); err != nil {
		return nil, errors.Errorf("validating rule: %w", err)
	}
	return &Sweeper{
		root:     filepath.Clean(opts.Root),
		pattern:  opts.Pattern,
		rule:     opts.Rule,
		replacer: opts.Replacer,
		reporter: opts.Reporter,
	}, nil
}

// 🏃 Run executes one pass over the tree. A failure to enumerate the root is
// returned before any file is touched; per-file failures are reported and do
// not stop the run.
func (s *Sweeper) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	summary := Summary{}

	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				// Root missing or unreadable: nothing has been touched yet
				return err
			}
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping entry outside root")
			return nil
		}
		rel = filepath.ToSlash(rel)

		matched, err := doublestar.Match(s.pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", s.pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			return nil
		}
		if !matched {
			return nil
		}

		summary.FilesScanned++
		count, err := s.processFile(ctx, path, d)
		if err != nil {
			logger.Warn().Str("file", rel).Err(err).Msg("processing file failed")
			summary.FilesFailed++
			s.reporter.FileFailed(ctx, rel, err)
			return nil
		}
		if count > 0 {
			summary.FilesUpdated++
			summary.TotalReplacements += count
			s.reporter.FileUpdated(ctx, rel, count)
		} else {
			logger.Debug().Str("file", rel).Msg("no occurrences, skipping")
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("enumerating %s: %w", s.root, walkErr)
	}

	s.reporter.RunCompleted(ctx, summary)
	return &summary, nil
}

// 📄 processFile reads, replaces, and rewrites a single file, returning its
// occurrence count. A zero count means the file was left untouched.
func (s *Sweeper) processFile(ctx context.Context, path string, d fs.DirEntry) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Errorf("reading file: %w", err)
	}

	result, err := s.replacer.ReplaceText(ctx, bytes.NewReader(content), []text.ReplacementRule{s.rule})
	if err != nil {
		return 0, errors.Errorf("replacing text: %w", err)
	}
	if !result.WasModified {
		return 0, nil
	}

	// Keep the file's own mode; this tool rewrites working trees in place
	mode := fs.FileMode(0644)
	if info, err := d.Info(); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, result.ModifiedContent, mode); err != nil {
		return 0, errors.Errorf("writing file: %w", err)
	}

	return result.ReplacementCount, nil
}

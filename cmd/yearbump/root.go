package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/yearbump/pkg/status"
	"github.com/walteh/yearbump/pkg/sweep"
	"github.com/walteh/yearbump/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Run parameters are fixed at the call site: this is a one-shot tool for a
// version-controlled content tree, not a general find-and-replace.
const (
	contentRoot = "src/content/calculators"
	filePattern = "**/*.mdx"
	oldYear     = "2025"
	newYear     = "2026"
)

var (
	// Flags
	debug bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yearbump",
		Short: "Bump the year in MDX content files",
		Long: `yearbump replaces every occurrence of "` + oldYear + `" with "` + newYear + `" in the
MDX files under ` + contentRoot + `, in place, and reports per-file and total
replacement counts. Files without occurrences are left untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	return cmd
}

// run wires the replacer, sweeper, and reporting together and executes one pass
func run(ctx context.Context) error {
	// Set up logger
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	// Create user logger
	userLogger := status.NewUserLogger(ctx)
	userLogger.LogRunStart(contentRoot, filePattern, oldYear, newYear)

	// Create status manager
	statusMgr := status.NewManager(os.Stdout, status.NewDefaultFileFormatter())

	// Create sweeper
	sweeper, err := sweep.New(sweep.Options{
		Root:     contentRoot,
		Pattern:  filePattern,
		Rule:     text.ReplacementRule{FromText: oldYear, ToText: newYear},
		Replacer: text.NewSimpleTextReplacer(),
		Reporter: statusMgr,
	})
	if err != nil {
		return errors.Errorf("creating sweeper: %w", err)
	}

	// Run the pass; only an enumeration failure is fatal
	summary, err := sweeper.Run(ctx)
	if err != nil {
		userLogger.LogFatal(err)
		return err
	}

	userLogger.LogRunCompleted(*summary)
	return nil
}

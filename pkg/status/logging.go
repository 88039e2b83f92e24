package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/yearbump/pkg/sweep"
)

// 📢 UserLogger provides run-level banners around the per-file report
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogRunStart announces what the run is about to do
func (u *UserLogger) LogRunStart(root, pattern, from, to string) {
	msg := fmt.Sprintf("Replacing %q with %q in %s (%s)", from, to, root, pattern)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔁"}).Println(msg)
	u.log.Info().Msg(msg)
}

// 📝 LogRunCompleted announces the outcome of a finished run
func (u *UserLogger) LogRunCompleted(summary sweep.Summary) {
	if summary.FilesUpdated == 0 {
		msg := "Nothing to update"
		pterm.Info.WithPrefix(pterm.Prefix{Text: "👍"}).Println(msg)
		u.log.Info().Msg(msg)
		return
	}

	msg := fmt.Sprintf("Updated %d files (%d replacements)", summary.FilesUpdated, summary.TotalReplacements)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Msg(msg)
}

// 📝 LogFatal announces an aborted run
func (u *UserLogger) LogFatal(err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println("run aborted")
	pterm.Error.Println(err)
	u.log.Error().Err(err).Msg("run aborted")
}

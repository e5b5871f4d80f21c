// Package acquire installs the target package through an ordered sequence
// of fallback sources.
package acquire

import (
	"context"
	"errors"
	"log/slog"

	"github.com/FL-Penly/slack-coder/internal/config"
	"github.com/FL-Penly/slack-coder/internal/platform"
	"github.com/FL-Penly/slack-coder/internal/ui"
)

// Source is one candidate method for obtaining the package, expressed as
// arguments to uv. Sources are tried strictly in slice order; racing them
// would break the first-success-wins contract.
type Source struct {
	ID   string
	Args []string
}

// Attempt records the outcome of one acquisition source. Failed attempts
// are never surfaced in user-facing output; they are kept for debug
// logging and tests.
type Attempt struct {
	Source string
	Err    error
}

// ErrAllSourcesFailed means every acquisition candidate failed. Per-source
// errors are deliberately left out of the message.
var ErrAllSourcesFailed = errors.New("all acquisition sources failed")

// Sources returns the acquisition candidates in priority order: primary
// registry, regional mirror, then a direct source-control install.
// --force makes reinstalls idempotent, overwriting a previous install of
// the same package without confirmation.
func Sources(cfg *config.InstallConfig) []Source {
	return []Source{
		{
			ID:   "pypi",
			Args: []string{"tool", "install", "--force", cfg.PackageName},
		},
		{
			ID:   "pypi-mirror",
			Args: []string{"tool", "install", "--force", "--index-url", cfg.MirrorIndexURL, cfg.PackageName},
		},
		{
			ID:   "git",
			Args: []string{"tool", "install", "--force", "git+" + cfg.RepoURL},
		},
	}
}

// Install tries each source in order and commits to the first success.
// Candidates after the first success are never attempted. All per-attempt
// errors are swallowed into debug logs and the returned Attempt records;
// only the aggregate failure is reported.
func Install(ctx context.Context, runner platform.CommandRunner, uvPath string, sources []Source, output *ui.UI) (Source, []Attempt, error) {
	attempts := make([]Attempt, 0, len(sources))
	for _, src := range sources {
		stop := output.Spinner("Installing from " + src.ID)
		err := runner.Run(ctx, uvPath, src.Args...)
		stop()
		attempts = append(attempts, Attempt{Source: src.ID, Err: err})
		if err == nil {
			output.Success("Installed from %s", src.ID)
			return src, attempts, nil
		}
		slog.Debug("acquisition source failed", "source", src.ID, "err", err)
	}
	return Source{}, attempts, ErrAllSourcesFailed
}

// Package verify confirms the installed binary is actually reachable.
package verify

import (
	"context"
	"os"
	"path/filepath"

	"github.com/FL-Penly/slack-coder/internal/pathenv"
	"github.com/FL-Penly/slack-coder/internal/platform"
)

// Status classifies the outcome of post-install verification.
type Status int

const (
	// Reachable means the binary resolves directly on the execution path.
	Reachable Status = iota
	// FoundButNotOnPath means the binary exists in a known install
	// directory that is not on the execution path. Non-fatal.
	FoundButNotOnPath
	// NotFound means the binary exists nowhere we know to look. This is
	// a post-install inconsistency, distinct from an acquisition failure.
	NotFound
)

// Result carries the verification status and, when found, the binary
// location.
type Result struct {
	Status Status
	Path   string // full executable path when found
	Dir    string // containing directory for FoundButNotOnPath
}

// DefaultInstallDirs returns the known install directories probed when
// the binary does not resolve on the execution path, in probe order.
func DefaultInstallDirs(h platform.Host) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dirs := []string{
		filepath.Join(home, ".local", "bin"),
		filepath.Join(home, ".cargo", "bin"),
	}
	if h.Family != platform.FamilyWindows {
		dirs = append(dirs, "/usr/local/bin")
	}
	return dirs
}

// Verify refreshes sp and checks that binaryName is reachable, falling
// back to probing installDirs. A confirmatory --help invocation runs
// best-effort when the binary resolves directly; its failure never
// downgrades the result.
func Verify(ctx context.Context, runner platform.CommandRunner, h platform.Host, sp *pathenv.SearchPath, binaryName string, installDirs []string) Result {
	sp.Refresh(ctx, runner, h)

	if p, ok := sp.Look(h, binaryName); ok {
		_ = runner.Run(ctx, p, "--help")
		return Result{Status: Reachable, Path: p}
	}

	for _, dir := range installDirs {
		if p, ok := pathenv.LookIn(dir, h, binaryName); ok {
			return Result{Status: FoundButNotOnPath, Path: p, Dir: dir}
		}
	}

	return Result{Status: NotFound}
}

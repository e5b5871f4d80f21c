// Package bootstrap ensures the uv package manager is present before the
// target application is installed.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FL-Penly/slack-coder/internal/pathenv"
	"github.com/FL-Penly/slack-coder/internal/platform"
	"github.com/FL-Penly/slack-coder/internal/ui"
)

// Binary is the command name of the package manager being bootstrapped.
const Binary = "uv"

// ManualInstallURL is shown when automated bootstrap cannot complete.
const ManualInstallURL = "https://docs.astral.sh/uv/getting-started/installation/"

const (
	installScriptSh = "https://astral.sh/uv/install.sh"
	installScriptPS = "https://astral.sh/uv/install.ps1"
)

// ErrUnsupportedPlatform means the host OS family is not one the
// installer can drive install commands on.
var ErrUnsupportedPlatform = errors.New("unsupported platform; install uv manually from " + ManualInstallURL)

// BootstrapFailedError means uv was still unreachable after the install
// attempt and the fallback-directory probe.
type BootstrapFailedError struct {
	Guidance string
}

func (e *BootstrapFailedError) Error() string {
	return "uv bootstrap failed: " + e.Guidance
}

// DefaultFallbackDirs returns the well-known directories the uv installer
// drops its binary into, in probe order. The install scripts update shell
// profiles rather than the running process, so a fresh install often lands
// here without being on the inherited PATH.
func DefaultFallbackDirs(h platform.Host) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".local", "bin"),
		filepath.Join(home, ".cargo", "bin"),
	}
}

// EnsureUV makes sure uv is reachable on sp, installing it when absent,
// and returns the resolved uv executable path. Reinstalling an existing
// uv is never attempted. Directories discovered via fallbackDirs are
// prepended to sp so later stages see them.
func EnsureUV(ctx context.Context, runner platform.CommandRunner, h platform.Host, sp *pathenv.SearchPath, fallbackDirs []string, output *ui.UI) (string, error) {
	if p, ok := sp.Look(h, Binary); ok {
		if ver, err := uvVersion(ctx, runner, p); err == nil {
			output.Success("uv %s already installed", ver)
		} else {
			output.Success("uv already installed")
		}
		return p, nil
	}

	output.Info("Installing uv...")
	stop := output.Spinner("Running the uv installer")
	var err error
	switch h.Family {
	case platform.FamilyLinux, platform.FamilyMacOS:
		err = runner.Run(ctx, "sh", "-c", "curl -LsSf "+installScriptSh+" | sh")
	case platform.FamilyWindows:
		err = runner.Run(ctx, "powershell", "-ExecutionPolicy", "ByPass", "-c", "irm "+installScriptPS+" | iex")
	default:
		stop()
		return "", ErrUnsupportedPlatform
	}
	stop()
	if err != nil {
		// Not fatal yet: the reachability checks below decide.
		slog.Debug("uv installer returned an error", "err", err)
	}

	sp.Refresh(ctx, runner, h)
	if p, ok := sp.Look(h, Binary); ok {
		output.Success("uv installed")
		return p, nil
	}

	for _, dir := range fallbackDirs {
		if p, ok := pathenv.LookIn(dir, h, Binary); ok {
			sp.Prepend(dir)
			output.Success("uv installed to %s", dir)
			return p, nil
		}
	}

	return "", &BootstrapFailedError{
		Guidance: "uv is still not reachable after installation; install it manually from " + ManualInstallURL + " and re-run",
	}
}

func uvVersion(ctx context.Context, runner platform.CommandRunner, uvPath string) (string, error) {
	out, err := runner.RunWithOutput(ctx, uvPath, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "uv "), nil
}

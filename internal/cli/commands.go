package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/FL-Penly/slack-coder/internal/acquire"
	"github.com/FL-Penly/slack-coder/internal/bootstrap"
	"github.com/FL-Penly/slack-coder/internal/config"
	"github.com/FL-Penly/slack-coder/internal/pathenv"
	"github.com/FL-Penly/slack-coder/internal/platform"
	"github.com/FL-Penly/slack-coder/internal/ui"
	"github.com/FL-Penly/slack-coder/internal/verify"
)

// InstallCmd runs the full bootstrap-install-verify sequence.
type InstallCmd struct{}

// Run executes the installer: detect host, ensure uv, acquire the
// package, verify reachability, print the outcome. Strictly sequential;
// every fatal error propagates immediately.
func (cmd *InstallCmd) Run(globals *Globals, runner platform.CommandRunner, output *ui.UI) error {
	ctx := context.Background()
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}

	printBanner(output)

	output.Step("Detecting Platform")
	h := platform.Detect(ctx, runner)
	output.Success("OS: %s | Arch: %s | %s", h.Family, h.Arch, h.Description)

	sp := pathenv.FromEnv()

	// Idempotent re-run: everything already present means no install
	// command runs at all.
	if p, ok := sp.Look(h, cfg.BinaryName); ok {
		output.Success("%s already installed at %s", cfg.BinaryName, p)
		output.Info("Run %s to get started, or %s to check the setup", output.Bold(cfg.BinaryName+" init"), output.Bold(cfg.BinaryName+" doctor"))
		return nil
	}

	output.Step("Checking uv")
	uvPath, err := bootstrap.EnsureUV(ctx, runner, h, sp, bootstrap.DefaultFallbackDirs(h), output)
	if err != nil {
		return err
	}
	// Directories discovered during bootstrap must be visible to the uv
	// subprocesses spawned next.
	_ = os.Setenv("PATH", sp.String())

	output.Step("Installing Slack Coder")
	src, _, err := acquire.Install(ctx, runner, uvPath, acquire.Sources(cfg), output)
	if err != nil {
		return fmt.Errorf("%w: try 'uv tool install %s' yourself, or see %s", err, cfg.PackageName, cfg.RepoURL)
	}

	output.Step("Verifying Installation")
	res := verify.Verify(ctx, runner, h, sp, cfg.BinaryName, verify.DefaultInstallDirs(h))
	switch res.Status {
	case verify.Reachable:
		output.Success("%s is ready", cfg.BinaryName)
	case verify.FoundButNotOnPath:
		output.Warn("%s installed to %s, which is not on your PATH", cfg.BinaryName, res.Dir)
	case verify.NotFound:
		return fmt.Errorf("%s was installed but cannot be found on the PATH or in any known install directory; install manually from %s", cfg.BinaryName, cfg.RepoURL)
	}

	output.PrintInstallSummary(&ui.InstallSummary{
		PackageName: cfg.PackageName,
		BinaryName:  cfg.BinaryName,
		Source:      src.ID,
		Host:        h.Description,
		OnPath:      res.Status == verify.Reachable,
		InstallDir:  res.Dir,
		DataDir:     cfg.DataDir,
	})
	return nil
}

// DoctorCmd checks an existing installation without installing anything.
type DoctorCmd struct{}

// Run reports whether uv and the installed binary are reachable.
func (cmd *DoctorCmd) Run(globals *Globals, runner platform.CommandRunner, output *ui.UI) error {
	ctx := context.Background()
	cfg := config.Default()

	output.Step("Checking Installation")
	h := platform.Detect(ctx, runner)
	output.Info("Host: %s (%s)", h.Description, h.Arch)

	sp := pathenv.FromEnv()
	if p, ok := sp.Look(h, bootstrap.Binary); ok {
		output.Success("uv: %s", p)
	} else {
		output.Warn("uv: not found (run the installer to bootstrap it)")
	}

	res := verify.Verify(ctx, runner, h, sp, cfg.BinaryName, verify.DefaultInstallDirs(h))
	switch res.Status {
	case verify.Reachable:
		output.Success("%s: %s", cfg.BinaryName, res.Path)
	case verify.FoundButNotOnPath:
		output.Warn("%s: found at %s but not on your PATH", cfg.BinaryName, res.Path)
		output.Info("Add it with: export PATH=\"%s:$PATH\"", res.Dir)
	case verify.NotFound:
		return fmt.Errorf("%s is not installed; run vibe-install to set it up", cfg.BinaryName)
	}
	return nil
}

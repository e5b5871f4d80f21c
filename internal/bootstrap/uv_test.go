package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/FL-Penly/slack-coder/internal/pathenv"
	"github.com/FL-Penly/slack-coder/internal/platform"
	"github.com/FL-Penly/slack-coder/internal/ui"
)

func testUI() *ui.UI {
	return ui.NewWriter(&bytes.Buffer{}, false)
}

func linuxHost() platform.Host {
	return platform.Host{Family: platform.FamilyLinux}
}

func writeFakeUV(t *testing.T, dir string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit fixtures are not portable to windows")
	}
	p := filepath.Join(dir, Binary)
	if err := os.WriteFile(p, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEnsureUV_AlreadyInstalled(t *testing.T) {
	dir := t.TempDir()
	uvPath := writeFakeUV(t, dir)

	m := platform.NewMockRunner()
	m.OutputMap[m.Key(uvPath, "--version")] = []byte("uv 0.5.9\n")

	sp := pathenv.New(dir)
	got, err := EnsureUV(context.Background(), m, linuxHost(), sp, nil, testUI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != uvPath {
		t.Fatalf("EnsureUV() = %q, want %q", got, uvPath)
	}
	// Idempotence: no install command may run.
	for _, cmd := range m.Commands {
		if cmd.Name == "sh" || cmd.Name == "powershell" {
			t.Fatalf("expected installer to be skipped, ran %s %v", cmd.Name, cmd.Args)
		}
	}
}

func TestEnsureUV_InstallsThenFindsInFallbackDir(t *testing.T) {
	t.Setenv("PATH", "")
	fallback := t.TempDir()
	uvPath := writeFakeUV(t, fallback)

	m := platform.NewMockRunner()
	sp := pathenv.New()

	got, err := EnsureUV(context.Background(), m, linuxHost(), sp, []string{fallback}, testUI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != uvPath {
		t.Fatalf("EnsureUV() = %q, want %q", got, uvPath)
	}
	if len(m.Commands) == 0 || m.Commands[0].Name != "sh" {
		t.Fatalf("expected curl|sh installer to run first, got %v", m.Commands)
	}
	if dirs := sp.Dirs(); len(dirs) == 0 || dirs[0] != fallback {
		t.Fatalf("expected fallback dir prepended to search path, got %v", dirs)
	}
}

func TestEnsureUV_InstallerErrorStillChecksFallback(t *testing.T) {
	t.Setenv("PATH", "")
	fallback := t.TempDir()
	writeFakeUV(t, fallback)

	m := platform.NewMockRunner()
	m.ErrorMap[m.Key("sh", "-c", "curl -LsSf "+installScriptSh+" | sh")] = errors.New("network timeout")

	sp := pathenv.New()
	_, err := EnsureUV(context.Background(), m, linuxHost(), sp, []string{fallback}, testUI())
	if err != nil {
		t.Fatalf("installer error should not be fatal when the binary turns up: %v", err)
	}
}

func TestEnsureUV_WindowsUsesPowershell(t *testing.T) {
	sp := pathenv.New()
	m := platform.NewMockRunner()

	_, err := EnsureUV(context.Background(), m, platform.Host{Family: platform.FamilyWindows}, sp, nil, testUI())

	var bootErr *BootstrapFailedError
	if !errors.As(err, &bootErr) {
		t.Fatalf("expected BootstrapFailedError, got %v", err)
	}
	if len(m.Commands) == 0 || m.Commands[0].Name != "powershell" {
		t.Fatalf("expected powershell installer, got %v", m.Commands)
	}
}

func TestEnsureUV_UnsupportedPlatform(t *testing.T) {
	sp := pathenv.New()
	m := platform.NewMockRunner()

	_, err := EnsureUV(context.Background(), m, platform.Host{Family: platform.FamilyUnknown}, sp, nil, testUI())
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
	if len(m.Commands) != 0 {
		t.Fatalf("expected no commands on unsupported platform, got %v", m.Commands)
	}
}

func TestEnsureUV_BootstrapFailed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fixture relies on unix PATH semantics")
	}
	t.Setenv("PATH", "")
	emptyDir := t.TempDir()

	m := platform.NewMockRunner()
	sp := pathenv.New()

	_, err := EnsureUV(context.Background(), m, linuxHost(), sp, []string{emptyDir}, testUI())

	var bootErr *BootstrapFailedError
	if !errors.As(err, &bootErr) {
		t.Fatalf("expected BootstrapFailedError, got %v", err)
	}
	if bootErr.Guidance == "" {
		t.Fatal("expected manual-install guidance")
	}
}

func TestUVVersion_StripsPrefix(t *testing.T) {
	m := platform.NewMockRunner()
	m.OutputMap[m.Key("uv", "--version")] = []byte("uv 0.5.9\n")

	ver, err := uvVersion(context.Background(), m, "uv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ver != "0.5.9" {
		t.Fatalf("uvVersion() = %q, want 0.5.9", ver)
	}
}

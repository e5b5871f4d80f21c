package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Family identifies the host operating system family used to select
// install and verification commands.
type Family string

// Recognized OS families. Anything else maps to FamilyUnknown.
const (
	FamilyLinux   Family = "linux"
	FamilyMacOS   Family = "macos"
	FamilyWindows Family = "windows"
	FamilyUnknown Family = "unknown"
)

// Host holds the detected OS family, architecture, and a human-readable
// description for status output.
type Host struct {
	Family      Family
	Arch        string // amd64, arm64, armv7
	Description string // e.g. "ubuntu 22.04", best effort
}

// Detect probes the runtime environment and returns host info.
// Unrecognized operating systems map to FamilyUnknown; detection itself
// never fails.
func Detect(ctx context.Context, runner CommandRunner) Host {
	h := Host{
		Family: FamilyUnknown,
		Arch:   normalizeArch(runtime.GOARCH),
	}

	switch runtime.GOOS {
	case "linux":
		h.Family = FamilyLinux
	case "darwin":
		h.Family = FamilyMacOS
	case "windows":
		h.Family = FamilyWindows
	}

	// WSL installs like plain linux but is worth calling out in the
	// description.
	wsl := false
	if h.Family == FamilyLinux {
		out, err := runner.RunWithOutput(ctx, "cat", "/proc/version")
		if err == nil && containsCI(string(out), "microsoft") {
			wsl = true
		}
	}

	h.Description = describe(ctx, h, wsl)
	return h
}

// Supported reports whether the family is one the installer knows how to
// drive commands on.
func (h Host) Supported() bool {
	return h.Family != FamilyUnknown
}

// ExeSuffix returns the executable filename suffix for the host family.
func (h Host) ExeSuffix() string {
	if h.Family == FamilyWindows {
		return ".exe"
	}
	return ""
}

func describe(ctx context.Context, h Host, wsl bool) string {
	desc := string(h.Family)
	if info, err := host.InfoWithContext(ctx); err == nil && info.Platform != "" {
		desc = info.Platform
		if info.PlatformVersion != "" {
			desc += " " + info.PlatformVersion
		}
	}
	if wsl {
		desc += " (WSL)"
	}
	return desc
}

func normalizeArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "amd64"
	case "arm64":
		return "arm64"
	case "arm":
		return "armv7"
	default:
		return goarch
	}
}

func containsCI(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

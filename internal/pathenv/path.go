// Package pathenv models the execution path as an explicit value.
//
// The installer never mutates a hidden global: the SearchPath it builds at
// startup is threaded through bootstrap and verification, so tests can
// inject synthetic paths without touching the real process environment.
package pathenv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/FL-Penly/slack-coder/internal/platform"
)

// windowsPathQuery reads the persisted user- and machine-scoped Path
// values, which a fresh install writes to without updating the current
// process environment.
const windowsPathQuery = "[Environment]::GetEnvironmentVariable('Path','User') + ';' + [Environment]::GetEnvironmentVariable('Path','Machine')"

// SearchPath is an ordered list of directories searched for executables.
type SearchPath struct {
	dirs []string
}

// New returns a SearchPath over the given directories, in order.
func New(dirs ...string) *SearchPath {
	sp := &SearchPath{}
	sp.Merge(dirs)
	return sp
}

// FromEnv returns a SearchPath seeded from the process PATH variable.
func FromEnv() *SearchPath {
	return New(filepath.SplitList(os.Getenv("PATH"))...)
}

// Dirs returns a copy of the directories in search order.
func (sp *SearchPath) Dirs() []string {
	out := make([]string, len(sp.dirs))
	copy(out, sp.dirs)
	return out
}

// String renders the path in PATH-variable form, joined with the
// platform list separator.
func (sp *SearchPath) String() string {
	return strings.Join(sp.dirs, string(os.PathListSeparator))
}

// Prepend moves dir to the front of the search order, removing any
// previous occurrence.
func (sp *SearchPath) Prepend(dir string) {
	if dir == "" {
		return
	}
	kept := make([]string, 0, len(sp.dirs)+1)
	kept = append(kept, dir)
	for _, d := range sp.dirs {
		if d != dir {
			kept = append(kept, d)
		}
	}
	sp.dirs = kept
}

// Merge appends directories that are not already present, preserving the
// existing order.
func (sp *SearchPath) Merge(dirs []string) {
	for _, d := range dirs {
		d = strings.TrimSpace(d)
		if d == "" || sp.contains(d) {
			continue
		}
		sp.dirs = append(sp.dirs, d)
	}
}

func (sp *SearchPath) contains(dir string) bool {
	for _, d := range sp.dirs {
		if d == dir {
			return true
		}
	}
	return false
}

// Refresh merges the persisted execution-path state back into sp.
// Install scripts update shell profiles (unix) or the registry-backed
// environment (windows) rather than the running process, so this is how
// newly written entries become visible without a new shell session.
// Directories already in sp keep their position; refresh never removes.
func (sp *SearchPath) Refresh(ctx context.Context, runner platform.CommandRunner, h platform.Host) {
	if h.Family == platform.FamilyWindows {
		out, err := runner.RunWithOutput(ctx, "powershell", "-NoProfile", "-Command", windowsPathQuery)
		if err != nil {
			return
		}
		sp.Merge(strings.Split(strings.TrimSpace(string(out)), ";"))
		return
	}
	sp.Merge(filepath.SplitList(os.Getenv("PATH")))
}

// Look resolves name to an executable path by searching sp in order.
func (sp *SearchPath) Look(h platform.Host, name string) (string, bool) {
	for _, dir := range sp.dirs {
		if p, ok := LookIn(dir, h, name); ok {
			return p, true
		}
	}
	return "", false
}

// LookIn checks a single directory for an executable named name,
// trying the windows executable suffixes when the host calls for them.
func LookIn(dir string, h platform.Host, name string) (string, bool) {
	for _, candidate := range candidates(h, name) {
		p := filepath.Join(dir, candidate)
		if isExecutable(h, p) {
			return p, true
		}
	}
	return "", false
}

func candidates(h platform.Host, name string) []string {
	if h.Family == platform.FamilyWindows {
		return []string{name + ".exe", name + ".cmd", name + ".bat", name}
	}
	return []string{name}
}

func isExecutable(h platform.Host, path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if h.Family == platform.FamilyWindows {
		return true
	}
	return info.Mode()&0o111 != 0
}

package config

import "fmt"

// InstallConfig holds the fixed identity of what the installer acquires
// and verifies. It is pure data: the installer reads no config files and
// persists nothing.
type InstallConfig struct {
	PackageName    string // package name on the primary registry
	BinaryName     string // command the package installs
	RepoURL        string // source-control fallback
	MirrorIndexURL string // regional mirror index
	DataDir        string // where the installed app keeps config/logs (guidance only)
}

// Default returns the installer configuration for Slack Coder.
func Default() *InstallConfig {
	return &InstallConfig{
		PackageName:    "slack-coder",
		BinaryName:     "vibe",
		RepoURL:        "https://github.com/FL-Penly/slack-coder.git",
		MirrorIndexURL: "https://pypi.tuna.tsinghua.edu.cn/simple",
		DataDir:        "~/.slack-coder",
	}
}

// Validate checks that all required fields are set.
func (c *InstallConfig) Validate() error {
	if c.PackageName == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if c.BinaryName == "" {
		return fmt.Errorf("binary name must not be empty")
	}
	if c.RepoURL == "" {
		return fmt.Errorf("repo URL must not be empty")
	}
	if c.MirrorIndexURL == "" {
		return fmt.Errorf("mirror index URL must not be empty")
	}
	return nil
}

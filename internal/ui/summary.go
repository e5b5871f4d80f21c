package ui

import (
	"fmt"
	"strings"
)

// InstallSummary holds data for the install completion summary.
type InstallSummary struct {
	PackageName string
	BinaryName  string
	Source      string // acquisition source the install came from
	Host        string // human-readable host description
	OnPath      bool   // whether the binary resolves on the execution path
	InstallDir  string // directory holding the binary when not on the path
	DataDir     string // where the installed app keeps its config and logs
}

// PrintInstallSummary displays the completion summary after install.
func (u *UI) PrintInstallSummary(s *InstallSummary) {
	divider := strings.Repeat("═", 54)

	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, u.colorize(colorGreen+colorBold, divider))
	fmt.Fprintln(u.out, u.colorize(colorGreen+colorBold, "  Slack Coder - Installation Complete!"))
	fmt.Fprintln(u.out, u.colorize(colorGreen+colorBold, divider))
	fmt.Fprintln(u.out)

	fmt.Fprintf(u.out, "  %s   %s (from %s)\n", u.Bold("Package:"), s.PackageName, s.Source)
	fmt.Fprintf(u.out, "  %s   %s\n", u.Bold("Command:"), s.BinaryName)
	fmt.Fprintf(u.out, "  %s      %s\n", u.Bold("Host:"), s.Host)
	fmt.Fprintf(u.out, "  %s      %s (config and logs)\n", u.Bold("Data:"), s.DataDir)
	fmt.Fprintln(u.out)

	if !s.OnPath {
		fmt.Fprintln(u.out, u.colorize(colorYellow+colorBold, "  PATH Setup Needed:"))
		fmt.Fprintf(u.out, "    %s is installed at %s but not on your PATH.\n", s.BinaryName, s.InstallDir)
		fmt.Fprintf(u.out, "    Add it to your shell profile, e.g.:\n")
		fmt.Fprintf(u.out, "      %s\n", u.Bold(fmt.Sprintf("export PATH=\"%s:$PATH\"", s.InstallDir)))
		fmt.Fprintln(u.out)
	}

	fmt.Fprintln(u.out, u.colorize(colorCyan+colorBold, "  Quick Start:"))
	fmt.Fprintf(u.out, "    First-time setup:   %s\n", u.Bold(s.BinaryName+" init"))
	fmt.Fprintf(u.out, "    Start service:      %s\n", u.Bold(s.BinaryName))
	fmt.Fprintf(u.out, "    Stop service:       %s\n", u.Bold(s.BinaryName+" stop"))
	fmt.Fprintf(u.out, "    Health check:       %s\n", u.Bold(s.BinaryName+" doctor"))
	fmt.Fprintln(u.out)

	fmt.Fprintln(u.out, u.colorize(colorCyan+colorBold, "  Slack App:"))
	fmt.Fprintf(u.out, "    %s walks you through creating the Slack app\n", u.Bold(s.BinaryName+" init"))
	fmt.Fprintln(u.out, "    and pasting in the bot and app tokens.")
	fmt.Fprintln(u.out, "    Manual route: https://api.slack.com/apps")
	fmt.Fprintln(u.out)

	fmt.Fprintln(u.out, u.colorize(colorCyan+colorBold, "  Uninstall:"))
	fmt.Fprintf(u.out, "    %s\n", u.Bold("uv tool uninstall "+s.PackageName))
	fmt.Fprintf(u.out, "    Then remove %s if you want a clean slate.\n", s.DataDir)
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, u.colorize(colorGreen+colorBold, divider))
	fmt.Fprintln(u.out)
}

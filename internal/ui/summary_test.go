package ui

import (
	"bytes"
	"strings"
	"testing"
)

func testSummary() *InstallSummary {
	return &InstallSummary{
		PackageName: "slack-coder",
		BinaryName:  "vibe",
		Source:      "pypi",
		Host:        "ubuntu 22.04",
		OnPath:      true,
		DataDir:     "~/.slack-coder",
	}
}

func TestPrintInstallSummary_OnPath(t *testing.T) {
	var buf bytes.Buffer
	u := NewWriter(&buf, false)

	u.PrintInstallSummary(testSummary())
	out := buf.String()

	for _, want := range []string{
		"Installation Complete",
		"slack-coder",
		"vibe init",
		"vibe doctor",
		"uv tool uninstall slack-coder",
		"~/.slack-coder",
		"api.slack.com/apps",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PATH Setup Needed") {
		t.Error("summary should not warn about PATH when the binary is reachable")
	}
}

func TestPrintInstallSummary_NotOnPath(t *testing.T) {
	var buf bytes.Buffer
	u := NewWriter(&buf, false)

	s := testSummary()
	s.OnPath = false
	s.InstallDir = "/home/dev/.local/bin"
	u.PrintInstallSummary(s)
	out := buf.String()

	if !strings.Contains(out, "PATH Setup Needed") {
		t.Fatalf("expected PATH warning:\n%s", out)
	}
	if !strings.Contains(out, `export PATH="/home/dev/.local/bin:$PATH"`) {
		t.Errorf("expected remediation line with the exact directory:\n%s", out)
	}
}

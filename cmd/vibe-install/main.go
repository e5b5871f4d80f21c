package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/FL-Penly/slack-coder/internal/cli"
	"github.com/FL-Penly/slack-coder/internal/platform"
	"github.com/FL-Penly/slack-coder/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var c cli.CLI
	runner := platform.NewOSCommandRunner()
	output := ui.Default()

	ctx := kong.Parse(&c,
		kong.Name("vibe-install"),
		kong.Description("Installs Slack Coder (vibe) and its prerequisites."),
		kong.Vars{"version": version + " (" + commit + ")"},
		kong.BindTo(runner, (*platform.CommandRunner)(nil)),
		kong.Bind(output),
	)

	if err := ctx.Run(&c.Globals); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

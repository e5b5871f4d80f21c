package cli

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Globals holds flags shared by all subcommands.
type Globals struct {
	Debug   bool             `help:"Enable debug logging" hidden:""`
	Version kong.VersionFlag `help:"Print version" short:"v" hidden:""`
}

// AfterApply configures debug logging when requested.
func (g *Globals) AfterApply() error {
	if g.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}

// CLI is the top-level command tree parsed by Kong. Running with no
// arguments executes the full install sequence.
type CLI struct {
	Globals

	Install InstallCmd `cmd:"" default:"1" help:"Install Slack Coder and its prerequisites"`
	Doctor  DoctorCmd  `cmd:"" help:"Check an existing installation without changing anything"`
}

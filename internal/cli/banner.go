package cli

import "github.com/FL-Penly/slack-coder/internal/ui"

const banner = `
  ____  _            _       ____          _
 / ___|| | __ _  ___| | __  / ___|___   __| | ___ _ __
 \___ \| |/ _` + "`" + ` |/ __| |/ / | |   / _ \ / _` + "`" + ` |/ _ \ '__|
  ___) | | (_| | (__|   <  | |__| (_) | (_| |  __/ |
 |____/|_|\__,_|\___|_|\_\  \____\___/ \__,_|\___|_|

        AI coding agent for Slack - installer
`

func printBanner(output *ui.UI) {
	output.Info("%s", output.Bold(banner))
}

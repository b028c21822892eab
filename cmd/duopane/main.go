// Command duopane shows two web apps side by side, each in its own
// persistent session.
package main

import (
	"os"
	"runtime"

	"github.com/bnema/duopane/internal/cli/cmd"
	"github.com/bnema/duopane/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Run GUI mode for open command
	if len(os.Args) > 1 && os.Args[1] == "open" {
		runtime.LockOSThread()
		os.Exit(runGUI(guiOptions{
			Version: version,
			Args:    os.Args[:1],
		}))
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

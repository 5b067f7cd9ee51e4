package cli

import (
	"fmt"
	"io"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/praetorian-inc/slice/internal/cli.version=...".
var (
	version = "dev"
	commit  = "unknown"
)

func printVersion(out io.Writer, tool Tool) error {
	fmt.Fprintf(out, "%s v%s\n", tool.Name, version)
	fmt.Fprintf(out, "Commit: %s\n", commit)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

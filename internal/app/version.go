package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/lpverneck/swe-design/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args contains a version flag.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer, programName string) {
	fmt.Fprintf(out, "%s %s\n", programName, Version)
}

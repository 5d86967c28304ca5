// Package buildinfo reports the version stamped into the binary via ldflags:
//
//	go build -ldflags "-X github.com/and161185/counters-admin/internal/buildinfo.BuildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
	"os"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

// PrintBuildInfo writes the build information to stdout.
func PrintBuildInfo() {
	Fprint(os.Stdout)
}

// Fprint writes the build information to w, using N/A for unset values.
func Fprint(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(BuildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

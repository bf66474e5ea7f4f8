// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X wings/internal/buildinfo.Version=v1.2.0 -X wings/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the HUD and window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns version, commit and date for the startup log line.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}

// Package version provides build version information embedding for
// turbokit applications.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/turbokit/version.Version=1.0.0"
//
// The bootstrap package logs the build version during initialization.
package version

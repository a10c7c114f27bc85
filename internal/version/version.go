// Package version carries the build version, overridden at link time with
// -ldflags "-X github.com/qoocca/parent-pay/internal/version.Version=...".
package version

var Version = "dev"

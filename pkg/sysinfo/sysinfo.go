// Package sysinfo probes the host for display information.
package sysinfo

// Default dimensions assumed when the platform probe fails. A 1920x1080
// wallpaper still renders acceptably on most displays, so probe failures
// degrade to this instead of aborting the run.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

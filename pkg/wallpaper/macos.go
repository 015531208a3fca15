//go:build darwin
// +build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/memewall/memewall/pkg/sysinfo"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}

// setWallpaper sets the desktop picture through Finder.
func (m *macOSOS) setWallpaper(imagePath string) error {
	script := fmt.Sprintf(`
		tell application "Finder"
			set desktop picture to POSIX file "%s"
		end tell
	`, imagePath)

	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (m *macOSOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}

//go:build linux
// +build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/memewall/memewall/pkg/sysinfo"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct{}

// getOS returns the platform implementation for this machine. Crostini
// containers carry /dev/.cros_milestone and cannot reach the Chrome OS
// wallpaper, so they get the stub that reports the limitation.
func getOS() OS {
	if _, err := os.Stat("/dev/.cros_milestone"); err == nil {
		return &chromeOS{}
	}
	return &linuxOS{}
}

func (l *linuxOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}

// setWallpaper dispatches on the desktop environment. GNOME-family desktops
// share the gsettings schema; the rest each have their own mechanism.
func (l *linuxOS) setWallpaper(imagePath string) error {
	desktop := desktopEnvironment()
	if desktop == "" {
		return fmt.Errorf("could not identify the desktop environment")
	}

	switch {
	case strings.Contains(desktop, "gnome"),
		strings.Contains(desktop, "unity"),
		strings.Contains(desktop, "budgie"):
		return l.setGNOME(imagePath)
	case strings.Contains(desktop, "cinnamon"):
		return l.setCinnamon(imagePath)
	case strings.Contains(desktop, "mate"):
		return l.setMATE(imagePath)
	case strings.Contains(desktop, "kde"), strings.Contains(desktop, "plasma"):
		return l.setKDE(imagePath)
	case strings.Contains(desktop, "xfce"):
		return l.setXFCE(imagePath)
	case strings.Contains(desktop, "sway"):
		return l.setSway(imagePath)
	default:
		return fmt.Errorf("unsupported desktop environment: %q", desktop)
	}
}

// desktopEnvironment normalizes the session identity advertised by the
// desktop. XDG_CURRENT_DESKTOP is the modern variable; DESKTOP_SESSION
// covers older display managers.
func desktopEnvironment() string {
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktop == "" {
		desktop = os.Getenv("DESKTOP_SESSION")
	}
	return strings.ToLower(desktop)
}

// setGNOME covers GNOME, Unity and Budgie, under both X11 and Wayland.
func (l *linuxOS) setGNOME(imagePath string) error {
	uri := "file://" + imagePath
	cmd := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gsettings failed: %w", err)
	}

	// Newer GNOME picks the dark variant key when a dark style is active.
	// Older releases lack the key entirely, so this set is best effort.
	_ = exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run()
	return nil
}

func (l *linuxOS) setCinnamon(imagePath string) error {
	cmd := exec.Command("gsettings", "set", "org.cinnamon.desktop.background", "picture-uri", "file://"+imagePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gsettings failed: %w", err)
	}
	return nil
}

// setMATE uses a plain path, not a file:// URI.
func (l *linuxOS) setMATE(imagePath string) error {
	cmd := exec.Command("gsettings", "set", "org.mate.background", "picture-filename", imagePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gsettings failed: %w", err)
	}
	return nil
}

// setKDE asks plasmashell to rewrite the wallpaper of every desktop over
// the session bus.
func (l *linuxOS) setKDE(imagePath string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object("org.kde.plasmashell", "/PlasmaShell").
		Call("org.kde.PlasmaShell.evaluateScript", 0, plasmaScript(imagePath))
	if call.Err != nil {
		return fmt.Errorf("plasmashell rejected the wallpaper script: %w", call.Err)
	}
	return nil
}

func plasmaScript(imagePath string) string {
	return fmt.Sprintf(`
var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
	var d = allDesktops[i];
	d.wallpaperPlugin = "org.kde.image";
	d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
	d.writeConfig("Image", "file://%s");
}`, imagePath)
}

func (l *linuxOS) setXFCE(imagePath string) error {
	cmd := exec.Command("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", "/backdrop/screen0/monitor0/workspace0/last-image",
		"--set", imagePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xfconf-query failed: %w", err)
	}
	return nil
}

// setSway goes through swaymsg so the call returns immediately instead of
// keeping a background renderer attached to this process.
func (l *linuxOS) setSway(imagePath string) error {
	cmd := exec.Command("swaymsg", "output", "*", "bg", imagePath, "fill")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("swaymsg failed: %w", err)
	}
	return nil
}

//go:build windows
// +build windows

package wallpaper

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/memewall/memewall/pkg/sysinfo"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// SystemParametersInfo constants for the wallpaper action.
const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// getOS returns a new instance of the windowsOS struct.
func getOS() OS {
	return &windowsOS{}
}

// setWallpaper sets the wallpaper to the given image file path.
func (w *windowsOS) setWallpaper(imagePath string) error {
	pathUTF16, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return fmt.Errorf("converting wallpaper path: %w", err)
	}

	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(pathUTF16)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}
	return nil
}

func (w *windowsOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}

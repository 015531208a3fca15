//go:build windows
// +build windows

package sysinfo

import (
	"fmt"
	"syscall"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// GetSystemMetrics indices for the primary display size.
const (
	smCXScreen = 0
	smCYScreen = 1
)

// GetScreenDimensions returns the primary desktop dimensions in pixels.
func GetScreenDimensions() (int, int, error) {
	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics reported a zero-sized display")
	}
	return int(width), int(height), nil
}

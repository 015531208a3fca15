//go:build windows
// +build windows

package cmd

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/memewall/memewall/config"
)

var mutex windows.Handle

// acquireLock takes the single-run lock so overlapping invocations cannot
// race on the history file and the wallpaper artifact. Returns false when
// another run already holds it.
func acquireLock() (bool, error) {
	namePtr, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	handle, err := windows.CreateMutex(nil, false, namePtr)
	if err != nil {
		// CreateMutex hands back a valid handle alongside this error.
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			windows.CloseHandle(handle)
			return false, nil
		}
		return false, err
	}

	mutex = handle
	return true, nil
}

// releaseLock drops the single-run lock. Best effort.
func releaseLock() {
	if mutex == 0 {
		return
	}
	windows.ReleaseMutex(mutex)
	windows.CloseHandle(mutex)
	mutex = 0
}

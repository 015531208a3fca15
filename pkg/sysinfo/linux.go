//go:build linux
// +build linux

package sysinfo

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetScreenDimensions returns the primary desktop dimensions on Linux.
// The active xrandr mode is preferred; xdpyinfo covers X servers without
// the RandR extension.
func GetScreenDimensions() (int, int, error) {
	if out, err := exec.Command("xrandr").Output(); err == nil {
		if w, h, err := parseXRandr(string(out)); err == nil {
			return w, h, nil
		}
	}

	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}
	return parseXDpyInfo(string(out))
}

// parseXRandr extracts the mode marked active with an asterisk:
//
//	1920x1080     60.01*+  59.97    59.96
func parseXRandr(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if w, h, err := parseResolution(fields[0]); err == nil {
			return w, h, nil
		}
	}
	return 0, 0, fmt.Errorf("no active mode in xrandr output")
}

// parseXDpyInfo extracts the screen dimensions line:
//
//	dimensions:    1920x1080 pixels (508x285 millimeters)
func parseXDpyInfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return parseResolution(fields[1])
		}
	}
	return 0, 0, fmt.Errorf("no dimensions line in xdpyinfo output")
}

func parseResolution(s string) (int, int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed resolution %q", s)
	}

	width, errW := strconv.Atoi(parts[0])
	height, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("malformed resolution %q", s)
	}
	return width, height, nil
}

//go:build darwin
// +build darwin

package sysinfo

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// resolutionRegex matches strings like "3456 x 2234" or "2880x1864Retina".
var resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

// profilerOutput mirrors the nesting of system_profiler -json.
type profilerOutput struct {
	Displays []profilerGPU `json:"SPDisplaysDataType"`
}

type profilerGPU struct {
	NDRVs []profilerDisplay `json:"spdisplays_ndrvs"`
}

type profilerDisplay struct {
	Pixels string `json:"_spdisplays_pixels"` // e.g. "3420 x 2214"
	Main   string `json:"spdisplays_main"`    // "spdisplays_yes" on the primary display
}

// GetScreenDimensions returns the primary desktop dimensions on macOS.
func GetScreenDimensions() (int, int, error) {
	if out, err := exec.Command("system_profiler", "SPDisplaysDataType", "-json").Output(); err == nil {
		if w, h, err := parseProfilerJSON(out); err == nil {
			return w, h, nil
		}
	}

	// Older macOS releases predate the -json flag.
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run system_profiler: %w", err)
	}
	return parseProfilerText(string(out))
}

// parseProfilerJSON picks the display marked main, or the first listed one
// when none is marked.
func parseProfilerJSON(data []byte) (int, int, error) {
	var profiler profilerOutput
	if err := json.Unmarshal(data, &profiler); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	var first string
	for _, gpu := range profiler.Displays {
		for _, display := range gpu.NDRVs {
			if display.Main == "spdisplays_yes" {
				return parseResolutionString(display.Pixels)
			}
			if first == "" {
				first = display.Pixels
			}
		}
	}
	if first != "" {
		return parseResolutionString(first)
	}
	return 0, 0, fmt.Errorf("no displays in system_profiler output")
}

// parseProfilerText scans the plain listing for the first resolution line:
//
//	Resolution: 2560 x 1440 (QHD/WQHD - Wide Quad High Definition)
func parseProfilerText(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Resolution:") {
			return parseResolutionString(line)
		}
	}
	return 0, 0, fmt.Errorf("no resolution line in system_profiler output")
}

func parseResolutionString(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse resolution from %q", s)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to parse resolution from %q", s)
	}
	return width, height, nil
}

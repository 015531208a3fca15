//go:build darwin

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilerJSONRetina = `{
  "SPDisplaysDataType": [
    {
      "spdisplays_ndrvs": [
        {
          "_spdisplays_pixels": "3420 x 2214",
          "spdisplays_main": "spdisplays_yes",
          "spdisplays_pixelresolution": "2880x1864Retina"
        }
      ]
    }
  ]
}`

const profilerJSONExternalFirst = `{
  "SPDisplaysDataType": [
    {
      "spdisplays_ndrvs": [
        {
          "_spdisplays_pixels": "1920 x 1080"
        },
        {
          "_spdisplays_pixels": "2560 x 1440",
          "spdisplays_main": "spdisplays_yes"
        }
      ]
    }
  ]
}`

func TestParseProfilerJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"retina main display", profilerJSONRetina, 3420, 2214, false},
		{"main display wins over first listed", profilerJSONExternalFirst, 2560, 1440, false},
		{"no displays", `{"SPDisplaysDataType": []}`, 0, 0, true},
		{"not json", "Graphics/Displays:", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH, err := parseProfilerJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}

func TestParseProfilerJSONFallsBackToFirstDisplay(t *testing.T) {
	input := `{
  "SPDisplaysDataType": [
    {"spdisplays_ndrvs": [{"_spdisplays_pixels": "1920 x 1200"}]}
  ]
}`

	w, h, err := parseProfilerJSON([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1200, h)
}

func TestParseProfilerText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name: "standard 1080p",
			input: `Graphics/Displays:
      Resolution: 1920 x 1080
      UI Looks like: 1920 x 1080
`,
			wantW: 1920,
			wantH: 1080,
		},
		{
			name: "retina display",
			input: `      Resolution: 2880 x 1800 Retina
      UI Looks like: 1440 x 900 @ 2x
`,
			wantW: 2880,
			wantH: 1800,
		},
		{
			name: "multiple displays matches first",
			input: `      Resolution: 2560 x 1440
      Resolution: 1920 x 1080
`,
			wantW: 2560,
			wantH: 1440,
		},
		{
			name:    "no resolution line",
			input:   "Graphics/Displays:\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH, err := parseProfilerText(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}

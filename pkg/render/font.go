package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/memewall/memewall/util/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ResolveFace loads the configured caption typeface at the given point
// size, searching the platform font directories by file name. Every failure
// falls back to the built-in fixed-size face: captions always render.
func ResolveFace(name string, size int) font.Face {
	data, err := findFontFile(name)
	if err != nil {
		log.Printf("Caption font %q unavailable, using built-in face: %v", name, err)
		return basicfont.Face7x13
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		log.Printf("Failed to parse caption font %q, using built-in face: %v", name, err)
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to load caption font %q, using built-in face: %v", name, err)
		return basicfont.Face7x13
	}
	return face
}

// findFontFile reads name directly if it is a path, otherwise walks the
// system font directories for a case-insensitive file name match. A bare
// family name gets a .ttf extension.
func findFontFile(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}

	target := strings.ToLower(name)
	if filepath.Ext(target) == "" {
		target += ".ttf"
	}

	for _, dir := range fontDirs() {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if strings.ToLower(d.Name()) == target {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return os.ReadFile(found)
		}
	}
	return nil, fmt.Errorf("font %q not found in system font directories", name)
}

// fontDirs lists the platform's font locations, most specific first.
func fontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{`C:\Windows\Fonts`}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Fonts"),
			"/Library/Fonts",
			"/System/Library/Fonts",
		}
	default:
		return []string{
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			"/usr/local/share/fonts",
			"/usr/share/fonts",
		}
	}
}

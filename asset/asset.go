// Package asset serves images bundled into the binary.
package asset

import (
	"bytes"
	"embed"
	"image"
	_ "image/png" // Register PNG decoder

	"github.com/memewall/memewall/util/log"
)

//go:embed images/*
var assets embed.FS

// FallbackMeme is the bundled image applied when no fresh meme can be found.
const FallbackMeme = "fallback_meme.png"

// Manager manages the loading of embedded assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetImage loads and decodes an embedded image asset by name.
func (am *Manager) GetImage(name string) (image.Image, error) {
	data, err := assets.ReadFile("images/" + name)
	if err != nil {
		log.Println("Error loading image:", err)
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Println("Error decoding image:", err)
		return nil, err
	}

	return img, nil
}

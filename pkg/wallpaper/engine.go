// Package wallpaper turns fetched memes into the desktop background.
//
// The Engine owns the full refresh pipeline: pick a novel meme, download
// it, caption it, fit it to the screen and hand it to the platform setter.
// Failures are logged and collapsed into a single ok flag so callers only
// ever see one of two outcomes.
package wallpaper

import (
	"context"
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/memewall/memewall/asset"
	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/pkg/history"
	"github.com/memewall/memewall/pkg/meme"
	"github.com/memewall/memewall/pkg/render"
	"github.com/memewall/memewall/pkg/sysinfo"
	"github.com/memewall/memewall/util/log"
)

// OS interface defines the operating system specific operations.
type OS interface {
	getDesktopDimension() (int, int, error)
	setWallpaper(path string) error
}

// Engine drives one wallpaper refresh from fetch to apply.
type Engine struct {
	cfg      *config.Settings
	os       OS
	client   *meme.Client
	fetcher  *meme.Fetcher
	assets   *asset.Manager
	artifact string
}

// NewEngine wires the refresh pipeline for the current platform. History
// that fails to load is logged and treated as empty; the next save rewrites
// the file.
func NewEngine(cfg *config.Settings) *Engine {
	store := history.NewStore(config.HistoryFilename(), cfg.MaxHistory)
	if err := store.Load(); err != nil {
		log.Printf("Could not load meme history, starting fresh: %v", err)
	}

	client := meme.NewClient(meme.DefaultBaseURL, meme.NewHTTPClient())
	return &Engine{
		cfg:      cfg,
		os:       getOS(),
		client:   client,
		fetcher:  meme.NewFetcher(client, store, cfg.Subreddits),
		assets:   asset.NewManager(),
		artifact: config.WallpaperFilename(),
	}
}

// Refresh runs the pipeline once and reports the artifact path and whether
// the desktop was actually updated. Every failure is logged here; callers
// decide only what to print.
func (e *Engine) Refresh(ctx context.Context) (string, bool) {
	img, ok := e.nextImage(ctx)
	if !ok {
		return "", false
	}

	width, height := e.targetDimensions()
	fitted := render.FitToScreen(img, width, height)

	if err := imaging.Save(fitted, e.artifact, imaging.JPEGQuality(95)); err != nil {
		log.Printf("Failed to save wallpaper image: %v", err)
		return "", false
	}

	if err := e.os.setWallpaper(e.artifact); err != nil {
		log.Printf("Failed to set wallpaper: %v", err)
		return e.artifact, false
	}
	return e.artifact, true
}

// nextImage produces the captioned meme, or the bundled fallback once the
// fetch budget is exhausted. The fallback carries no title and is applied
// uncaptioned.
func (e *Engine) nextImage(ctx context.Context) (image.Image, bool) {
	candidate, err := e.fetcher.FetchNovel(ctx)
	if err != nil {
		if !errors.Is(err, meme.ErrExhausted) {
			log.Printf("Meme fetch aborted: %v", err)
			return nil, false
		}

		log.Println("No new memes found, using the bundled fallback image")
		fallback, err := e.assets.GetImage(asset.FallbackMeme)
		if err != nil {
			log.Printf("Failed to load fallback image: %v", err)
			return nil, false
		}
		return fallback, true
	}

	img, err := e.client.DownloadImage(ctx, candidate.URL)
	if err != nil {
		log.Printf("Failed to download meme image: %v", err)
		return nil, false
	}

	face := render.ResolveFace(e.cfg.Font.Name, e.cfg.Font.Size)
	compositor := render.NewCompositor(face, e.cfg.BottomStripHeight)
	return compositor.Compose(img, candidate.Title), true
}

// targetDimensions asks the platform for the display size and degrades to
// the standard fallback when the probe fails.
func (e *Engine) targetDimensions() (int, int) {
	width, height, err := e.os.getDesktopDimension()
	if err != nil || width <= 0 || height <= 0 {
		log.Printf("Could not detect screen resolution, assuming %dx%d: %v",
			sysinfo.DefaultWidth, sysinfo.DefaultHeight, err)
		return sysinfo.DefaultWidth, sysinfo.DefaultHeight
	}
	return width, height
}

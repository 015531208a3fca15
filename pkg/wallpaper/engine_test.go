package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memewall/memewall/asset"
	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/pkg/history"
	"github.com/memewall/memewall/pkg/meme"
)

// memeServer serves one API endpoint and one image, like a tiny meme API.
type memeServer struct {
	*httptest.Server
	imageStatus int
}

func newMemeServer(t *testing.T) *memeServer {
	t.Helper()

	ms := &memeServer{imageStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("/gimme", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"title": "Fresh meme", "url": %q}`, ms.URL+"/meme.png")
	})
	mux.HandleFunc("/meme.png", func(w http.ResponseWriter, r *http.Request) {
		if ms.imageStatus != http.StatusOK {
			w.WriteHeader(ms.imageStatus)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		src := image.NewRGBA(image.Rect(0, 0, 400, 300))
		draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{200, 100, 50, 255}), image.Point{}, draw.Src)
		_ = png.Encode(w, src)
	})

	ms.Server = httptest.NewServer(mux)
	t.Cleanup(ms.Close)
	return ms
}

func (ms *memeServer) memeURL() string {
	return ms.URL + "/meme.png"
}

func newTestEngine(t *testing.T, ms *memeServer, osImpl OS, seen ...string) *Engine {
	t.Helper()

	cfg := config.DefaultSettings()
	cfg.Font.Name = "missing-font-face" // force the deterministic bitmap fallback
	cfg.Subreddits = []config.Category{config.AnyCategory}

	store := history.NewStore(filepath.Join(t.TempDir(), "meme_history.json"), cfg.MaxHistory)
	for _, url := range seen {
		store.Add(url)
	}

	client := meme.NewClient(ms.URL+"/gimme", ms.Client())
	return &Engine{
		cfg:      cfg,
		os:       osImpl,
		client:   client,
		fetcher:  meme.NewFetcher(client, store, cfg.Subreddits),
		assets:   asset.NewManager(),
		artifact: filepath.Join(t.TempDir(), "wallpaper.jpg"),
	}
}

func TestEngineRefreshHappyPath(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(1920, 1080, nil)
	osImpl.On("setWallpaper", mock.Anything).Return(nil)

	e := newTestEngine(t, ms, osImpl)
	path, ok := e.Refresh(context.Background())

	assert.True(t, ok)
	assert.Equal(t, e.artifact, path)
	osImpl.AssertCalled(t, "setWallpaper", e.artifact)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestEngineRefreshLetterboxesTheMeme(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(1920, 1080, nil)
	osImpl.On("setWallpaper", mock.Anything).Return(nil)

	e := newTestEngine(t, ms, osImpl)
	_, ok := e.Refresh(context.Background())
	require.True(t, ok)

	img, err := imaging.Open(e.artifact)
	require.NoError(t, err)

	// The captioned 400x300 meme is taller than the screen ratio, so the
	// fitted result is pillarboxed: black columns left and right, meme
	// pixels in the middle. JPEG is lossy, hence the loose bounds.
	left := color.NRGBAModel.Convert(img.At(5, 540)).(color.NRGBA)
	assert.Less(t, int(left.R)+int(left.G)+int(left.B), 45, "left margin should stay black")

	center := color.NRGBAModel.Convert(img.At(960, 800)).(color.NRGBA)
	assert.Greater(t, int(center.R), 150, "meme pixels should reach the center")
}

func TestEngineRefreshRecordsHistory(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(1920, 1080, nil)
	osImpl.On("setWallpaper", mock.Anything).Return(nil)

	e := newTestEngine(t, ms, osImpl)
	_, ok := e.Refresh(context.Background())
	require.True(t, ok)

	// A second refresh only sees the one (now seen) meme and must land on
	// the bundled fallback instead of repeating it.
	path, ok := e.Refresh(context.Background())
	assert.True(t, ok)
	assert.Equal(t, e.artifact, path)
	osImpl.AssertNumberOfCalls(t, "setWallpaper", 2)
}

func TestEngineRefreshUsesFallbackOnExhaustion(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(1920, 1080, nil)
	osImpl.On("setWallpaper", mock.Anything).Return(nil)

	e := newTestEngine(t, ms, osImpl, ms.memeURL())
	path, ok := e.Refresh(context.Background())

	assert.True(t, ok)
	assert.Equal(t, e.artifact, path)
	osImpl.AssertNumberOfCalls(t, "setWallpaper", 1)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestEngineRefreshFailsWhenDownloadFails(t *testing.T) {
	ms := newMemeServer(t)
	ms.imageStatus = http.StatusNotFound

	osImpl := &MockOS{}

	e := newTestEngine(t, ms, osImpl)
	path, ok := e.Refresh(context.Background())

	assert.False(t, ok)
	assert.Empty(t, path)
	osImpl.AssertNotCalled(t, "setWallpaper", mock.Anything)
	assert.NoFileExists(t, e.artifact)
}

func TestEngineRefreshFailsWhenSetterFails(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(1920, 1080, nil)
	osImpl.On("setWallpaper", mock.Anything).Return(errors.New("unsupported desktop environment"))

	e := newTestEngine(t, ms, osImpl)
	_, ok := e.Refresh(context.Background())

	assert.False(t, ok)
	assert.FileExists(t, e.artifact, "the artifact is written before the setter runs")
}

func TestEngineRefreshSurvivesProbeFailure(t *testing.T) {
	ms := newMemeServer(t)

	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(0, 0, errors.New("no display"))
	osImpl.On("setWallpaper", mock.Anything).Return(nil)

	e := newTestEngine(t, ms, osImpl)
	path, ok := e.Refresh(context.Background())

	assert.True(t, ok)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx(), "probe failure degrades to the default resolution")
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestEngineTargetDimensionsRejectsBogusSizes(t *testing.T) {
	osImpl := &MockOS{}
	osImpl.On("getDesktopDimension").Return(0, 1080, nil)

	e := &Engine{os: osImpl}
	w, h := e.targetDimensions()

	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestEngineRefreshAbortsOnCanceledContext(t *testing.T) {
	ms := newMemeServer(t)
	osImpl := &MockOS{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestEngine(t, ms, osImpl)
	path, ok := e.Refresh(ctx)

	assert.False(t, ok)
	assert.Empty(t, path)
	osImpl.AssertNotCalled(t, "setWallpaper", mock.Anything)
}

func TestNewEngineBuildsPlatform(t *testing.T) {
	cfg := config.DefaultSettings()

	e := NewEngine(cfg)

	require.NotNil(t, e)
	assert.NotNil(t, e.os)
	assert.NotNil(t, e.fetcher)
	assert.NotEmpty(t, e.artifact)
	assert.Equal(t, filepath.Join(os.TempDir(), config.WallpaperFileName), e.artifact)
}

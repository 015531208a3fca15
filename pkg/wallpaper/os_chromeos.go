package wallpaper

import (
	"errors"

	"github.com/memewall/memewall/pkg/sysinfo"
)

// chromeOS marks Crostini containers. The Linux VM has no path to the
// Chrome OS wallpaper, so setting always fails with a clear message.
type chromeOS struct{}

func (c *chromeOS) setWallpaper(path string) error {
	return errors.New("wallpaper changes are not possible from inside the Chrome OS Linux container")
}

func (c *chromeOS) getDesktopDimension() (int, int, error) {
	return sysinfo.DefaultWidth, sysinfo.DefaultHeight, nil
}

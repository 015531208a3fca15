package meme

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	// Register decoders for the non-core formats meme feeds serve.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxImageBytes caps how large a downloaded meme may be.
const maxImageBytes = 32 << 20

// DownloadImage fetches the image at imageURL and decodes it.
func (c *Client) DownloadImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status: %d", resp.StatusCode)
	}

	imgBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	return decodeImage(imgBytes, resp.Header.Get("Content-Type"))
}

// decodeImage decodes by the declared content type, falling back to format
// sniffing for anything else (gif first frame, webp, bmp).
func decodeImage(imgBytes []byte, contentType string) (image.Image, error) {
	var img image.Image
	var err error

	switch contentType {
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgBytes))
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgBytes))
	default:
		img, _, err = image.Decode(bytes.NewReader(imgBytes))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

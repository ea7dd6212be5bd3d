package attachments

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

// ThumbnailWidth matches the rendition width feed pages display.
const ThumbnailWidth = 400

const thumbnailQuality = 85

// Thumbnail scales an already-validated image down to at most maxWidth
// pixels wide, preserving aspect ratio, and re-encodes it as JPEG.
// Images narrower than maxWidth are not upscaled.
func Thumbnail(data []byte, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

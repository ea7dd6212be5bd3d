// Package attachments validates and stores post image attachments.
// An upload is accepted only if its bytes fully decode as one of the
// supported image container formats; extension and declared MIME type
// are ignored.
package attachments

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// contentTypes maps decoded format names to the MIME type stored
// alongside the bytes and replayed on the media endpoint.
var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// Validate decodes data against the supported image formats and returns
// the detected MIME type. Any decode failure, including plain text
// renamed with an image extension, yields ErrInvalidImage.
func Validate(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidImage
	}

	// Full decode rather than DecodeConfig: a header-only check would
	// accept a valid header followed by garbage.
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	contentType, ok := contentTypes[format]
	if !ok {
		return "", ErrInvalidImage
	}

	return contentType, nil
}

package attachments

import "errors"

// InvalidImageMessage is shown verbatim on the post form when an upload
// cannot be decoded as a supported image.
const InvalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

var (
	// ErrInvalidImage is returned when uploaded bytes do not decode as a
	// supported image format
	ErrInvalidImage = errors.New(InvalidImageMessage)

	// ErrAttachmentNotFound is returned when no image is stored for a post
	ErrAttachmentNotFound = errors.New("attachment not found")
)

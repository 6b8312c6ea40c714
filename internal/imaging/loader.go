package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load reads and decodes an image file.
//
// Supported formats are those registered by the decoder: PNG, JPEG,
// GIF, TIFF and BMP. The returned image is never nil on success.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file contents are not a decodable image
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return img, nil
}

// Save encodes an image to a file, choosing the format from the file
// extension. The file is only created once encoding begins, so a
// failed run does not leave an empty output behind.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

var imageExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
}

// DownscaleImage decodes an uploaded image and scales it down to maxWidth
// when it is wider than that, keeping the aspect ratio. Scaled images are
// re-encoded as JPEG; images that fit are passed through untouched.
// Returns the bytes to store and the file extension for them.
func DownscaleImage(r io.Reader, maxWidth int) ([]byte, string, error) {
	original := bytes.Buffer{}
	img, format, err := image.Decode(io.TeeReader(r, &original))
	if err != nil {
		return nil, "", err
	}
	ext, ok := imageExtensions[format]
	if !ok {
		ext = ".jpg"
	}
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		// TeeReader only saw what Decode consumed; drain the rest
		if _, err = io.Copy(&original, r); err != nil {
			return nil, "", err
		}
		return original.Bytes(), ext, nil
	}
	scaled := resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
	out := bytes.Buffer{}
	if err = jpeg.Encode(&out, scaled, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", err
	}
	return out.Bytes(), ".jpg", nil
}

package processor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // imaging registers no webp decoder
)

type ImageInfo struct {
	Width  int
	Height int
	Format string // jpeg, png, gif, bmp, tiff
}

// InspectImage fully decodes the payload, so truncated or disguised files are
// rejected before anything is sent upstream.
func InspectImage(content []byte) (*ImageInfo, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("resim okunamadı: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("resim açılamadı: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("resim boyutu geçersiz: %dx%d", bounds.Dx(), bounds.Dy())
	}

	return &ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

package processor

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectImage(t *testing.T) {
	img := imaging.New(64, 48, color.NRGBA{G: 255, A: 255})

	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	info, err := InspectImage(pngBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, &ImageInfo{Width: 64, Height: 48, Format: "png"}, info)

	var jpgBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpgBuf, img, nil))
	info, err = InspectImage(jpgBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "jpeg", info.Format)
	assert.Equal(t, 64, info.Width)
}

// 1x1 lossless WebP
const tinyWebP = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

func TestInspectImage_WebP(t *testing.T) {
	content, err := base64.StdEncoding.DecodeString(tinyWebP)
	require.NoError(t, err)

	info, err := InspectImage(content)
	require.NoError(t, err)
	assert.Equal(t, &ImageInfo{Width: 1, Height: 1, Format: "webp"}, info)
}

func TestInspectImage_Invalid(t *testing.T) {
	_, err := InspectImage([]byte("GIF89a but not really"))
	assert.Error(t, err)

	_, err = InspectImage(nil)
	assert.Error(t, err)
}

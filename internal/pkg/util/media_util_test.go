package util

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeImage(t *testing.T, format imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(4, 3, color.NRGBA{R: 255, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestGetSafeContentType(t *testing.T) {
	reader := bytes.NewReader(encodeImage(t, imaging.PNG))
	ct, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, int64(0), reader.Size()-int64(reader.Len()))

	ct, err = GetSafeContentType(bytes.NewReader([]byte("plain text")))
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", ct)
}

func TestDecodeImage(t *testing.T) {
	width, height, err := DecodeImage(encodeImage(t, imaging.JPEG))
	require.NoError(t, err)
	assert.Equal(t, 4, width)
	assert.Equal(t, 3, height)

	png := encodeImage(t, imaging.PNG)
	_, _, err = DecodeImage(png[:len(png)/2])
	assert.Error(t, err)
}

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".jpg", ImageExt("image/jpeg"))
	assert.Equal(t, ".png", ImageExt("image/png"))
	assert.Equal(t, "", ImageExt("image/svg+xml"))
}

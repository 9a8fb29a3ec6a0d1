package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

// encodeTestPNG returns a small solid PNG
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLibrary_LoadImage(t *testing.T) {
	fsys := fstest.MapFS{"pig.png": {Data: encodeTestPNG(t, 10, 8)}}
	lib := NewLibrary(fsys)

	require.NoError(t, lib.LoadImage("pig", "pig.png"))

	img := lib.Image("pig")
	require.NotNil(t, img)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestLibrary_LoadImage_Errors(t *testing.T) {
	fsys := fstest.MapFS{"broken.png": {Data: []byte("not a png")}}
	lib := NewLibrary(fsys)

	assert.Error(t, lib.LoadImage("missing", "missing.png"))
	assert.Error(t, lib.LoadImage("broken", "broken.png"))
	assert.Nil(t, lib.Image("missing"))
	assert.Nil(t, lib.Image("broken"))
}

func TestLibrary_LoadFont_Invalid(t *testing.T) {
	fsys := fstest.MapFS{"bad.ttf": {Data: []byte("garbage")}}
	lib := NewLibrary(fsys)

	assert.Error(t, lib.LoadFont("main", "bad.ttf"))
	assert.Error(t, lib.LoadFont("main", "absent.ttf"))
	assert.Nil(t, lib.Face("main", 24), "missing font yields a nil face")
}

func TestLibrary_LoadAll_PartialFailure(t *testing.T) {
	fsys := fstest.MapFS{"egg.png": {Data: encodeTestPNG(t, 4, 4)}}
	lib := NewLibrary(fsys)

	err := lib.LoadAll(config.AssetsConfig{
		Images: map[string]string{"egg": "egg.png", "cow": "cow.png"},
		Fonts:  map[string]string{"main": "Middle.ttf"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cow.png")
	assert.Contains(t, err.Error(), "Middle.ttf")
	assert.NotNil(t, lib.Image("egg"), "successful loads are kept")
	assert.Nil(t, lib.Image("cow"))
}

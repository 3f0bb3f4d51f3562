package glfwplatform

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestScaleIcon(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	icons := ScaleIcon(solid(64, red), 16, 32, 0)
	require.Len(t, icons, 2)
	assert.Equal(t, image.Rect(0, 0, 16, 16), icons[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), icons[1].Bounds())
	r, g, _, a := icons[1].At(10, 10).RGBA()
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0, g, 0x200)
	assert.InDelta(t, 0xffff, a, 0x200)
}

func TestLoadIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(8, color.RGBA{B: 255, A: 255})))
	require.NoError(t, f.Close())

	icons, err := LoadIcon(path)
	require.NoError(t, err)
	assert.Len(t, icons, len(IconSizes))
}

func TestLoadIconMissing(t *testing.T) {
	_, err := LoadIcon(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

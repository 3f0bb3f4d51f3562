package glfwplatform

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// IconSizes are the square sizes handed to the window manager, which picks
// the closest one for the title bar and task switcher.
var IconSizes = []int{16, 32, 48}

// LoadIcon decodes the image at path and scales it to each of IconSizes
func LoadIcon(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load icon: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return ScaleIcon(src, IconSizes...), nil
}

// ScaleIcon resamples src into one RGBA image per size
func ScaleIcon(src image.Image, sizes ...int) []image.Image {
	out := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			continue
		}
		dst := image.NewRGBA(image.Rect(0, 0, s, s))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out = append(out, dst)
	}
	return out
}

package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Centered requests centering on that axis in PlaceImage.
const Centered = -1

// LoadImage decodes a BMP or PNG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// PlaceImage thresholds img into dst with its top-left corner at (x, y).
// Either coordinate may be Centered. The covered rectangle is returned.
func PlaceImage(dst draw.Image, img image.Image, x, y int) image.Rectangle {
	bounds := dst.Bounds()
	size := img.Bounds().Size()
	if x == Centered {
		x = bounds.Min.X + (bounds.Dx()-size.X)/2
	}
	if y == Centered {
		y = bounds.Min.Y + (bounds.Dy()-size.Y)/2
	}
	rect := image.Rect(x, y, x+size.X, y+size.Y)
	draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
	return rect.Intersect(bounds)
}

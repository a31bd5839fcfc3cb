package render

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

// DrawQRCode renders payload as a QR code centered in rect, one filled square
// per module. It returns the area actually covered.
func DrawQRCode(c Canvas, payload string, rect image.Rectangle) (image.Rectangle, error) {
	if payload == "" {
		return image.Rectangle{}, nil
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return image.Rectangle{}, err
	}
	qrCode.DisableBorder = true
	modules := qrCode.Bitmap()
	count := len(modules)
	if count == 0 {
		return image.Rectangle{}, nil
	}

	side := min(rect.Dx(), rect.Dy())
	scale := side / count
	if scale < 1 {
		return image.Rectangle{}, fmt.Errorf("qr code with %d modules does not fit in %dx%d", count, rect.Dx(), rect.Dy())
	}

	size := scale * count
	origin := image.Pt(rect.Min.X+(rect.Dx()-size)/2, rect.Min.Y+(rect.Dy()-size)/2)
	for row, line := range modules {
		for col, dark := range line {
			if dark {
				DrawRect(c, origin.X+col*scale, origin.Y+row*scale, scale, scale, true, true)
			}
		}
	}
	return image.Rect(origin.X, origin.Y, origin.X+size, origin.Y+size), nil
}

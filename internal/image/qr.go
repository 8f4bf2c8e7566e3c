package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	MinQRSize = 64
	MaxQRSize = 1024
)

// ClampQRSize keeps a requested QR edge length within sane bounds.
func ClampQRSize(size int) int {
	return min(max(size, MinQRSize), MaxQRSize)
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text. Deck
// exports are long, so low recovery keeps the symbol readable.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Low, ClampQRSize(size))
}

// GenerateQRImage returns the QR code as an image for composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

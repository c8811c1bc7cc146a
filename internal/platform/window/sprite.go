package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // spritesheets are PNG
	"os"

	xdraw "golang.org/x/image/draw"
)

// LoadSpritesheet decodes the image at path and applies the chroma key.
func LoadSpritesheet(path string, key color.RGBA) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, errors.New("image " + path + " is empty")
	}
	return ChromaKey(img, key), nil
}

// ChromaKey returns a copy of img where every pixel whose RGB equals key is
// fully transparent. Other pixels are copied unchanged.
func ChromaKey(img image.Image, key color.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), img, b.Min, xdraw.Src)

	for y := 0; y < b.Dy(); y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			if row[x] == key.R && row[x+1] == key.G && row[x+2] == key.B {
				row[x], row[x+1], row[x+2], row[x+3] = 0, 0, 0, 0
			}
		}
	}
	return out
}

// FitSpritesheet returns sheet unchanged when it covers a board of the given
// edge. A smaller square sheet is scaled up with nearest-neighbour sampling so
// keyed pixels stay fully transparent. Smaller non-square sheets are rejected.
func FitSpritesheet(sheet *image.NRGBA, boardSize int) (*image.NRGBA, bool, error) {
	b := sheet.Bounds()
	if b.Dx() >= boardSize && b.Dy() >= boardSize {
		return sheet, false, nil
	}
	if b.Dx() != b.Dy() {
		return nil, false, fmt.Errorf("spritesheet is %dx%d, board needs %dx%d",
			b.Dx(), b.Dy(), boardSize, boardSize)
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, boardSize, boardSize))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sheet, b, xdraw.Src, nil)
	return scaled, true, nil
}

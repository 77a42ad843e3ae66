package halfblock_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tmpim/halfblock"
)

func ExampleLines() {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for _, p := range []image.Point{{0, 0}, {0, 1}, {1, 0}, {2, 1}, {0, 2}} {
		img.Set(p.X, p.Y, color.White)
	}

	src := halfblock.NewSource(img, false)
	for line := range halfblock.Lines(src, false) {
		fmt.Printf("[%s]\n", line)
	}
	// Output:
	// [█▀▄]
	// [▀  ]
}

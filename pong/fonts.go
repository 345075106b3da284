package pong

import (
	"log"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"golang.org/x/image/font"
)

var (
	// ArcadeFont draws the score line.
	ArcadeFont font.Face
	// BigArcadeFont draws the paused overlay.
	BigArcadeFont font.Face
)

// InitFonts prepares the text faces. Must run once before drawing.
func InitFonts() {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		log.Fatal(err)
	}

	ArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	BigArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    30,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

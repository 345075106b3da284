package pong

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// GetCenter returns the center position on screen
func GetCenter(screen *ebiten.Image) Position {
	w, h := screen.Size()
	return Position{
		X: float32(w / 2),
		Y: float32(h / 2),
	}
}

var (
	BgColor     = color.Black
	ObjColor    = color.White
	PausedColor = color.RGBA{0xff, 0, 0, 0xff}
)

package pong

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
)

// DrawScore prints the score line centered near the top of the screen.
func DrawScore(screen *ebiten.Image, left, right int, face font.Face) {
	msg := fmt.Sprintf("%d - %d", left, right)
	width := font.MeasureString(face, msg).Ceil()

	c := GetCenter(screen)
	text.Draw(screen, msg, face, int(c.X)-width/2, 40, ObjColor)
}

// DrawPaused prints the pause overlay in the middle of the screen.
func DrawPaused(screen *ebiten.Image, face font.Face) {
	msg := "PAUSED"
	width := font.MeasureString(face, msg).Ceil()

	c := GetCenter(screen)
	text.Draw(screen, msg, face, int(c.X)-width/2, int(c.Y), PausedColor)
}

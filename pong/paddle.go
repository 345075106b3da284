package pong

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

const (
	InitPaddleWidth  = 20
	InitPaddleHeight = 100
	InitPaddleShift  = 20
)

// Paddle is a player bat. X never changes after creation; Y is moved
// by input every tick. Position is the top-left corner.
type Paddle struct {
	Position
	Score  int           `json:"score"`
	Speed  float32       `json:"-"`
	Width  float32       `json:"width"`
	Height float32       `json:"height"`
	Color  color.Color   `json:"-"`
	Img    *ebiten.Image `json:"-"`
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float32 {
	return p.Y + p.Height/2
}

// Draw renders the paddle rectangle on screen
func (p *Paddle) Draw(screen *ebiten.Image) error {
	if p.Img == nil {
		img, err := ebiten.NewImage(int(p.Width), int(p.Height), ebiten.FilterDefault)
		if err != nil {
			return err
		}
		if err := img.Fill(p.Color); err != nil {
			return err
		}
		p.Img = img
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(p.X), float64(p.Y))
	return screen.DrawImage(p.Img, opts)
}

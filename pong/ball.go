package pong

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
)

const InitBallRadius = 8

// Ball is the moving piece. Position is the center of the disc.
type Ball struct {
	Position
	Radius    float32       `json:"radius"`
	XVelocity float32       `json:"vx"`
	YVelocity float32       `json:"vy"`
	Color     color.Color   `json:"-"`
	Img       *ebiten.Image `json:"-"`
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float32 {
	return float32(math.Sqrt(float64(b.XVelocity*b.XVelocity + b.YVelocity*b.YVelocity)))
}

// Draw renders the ball as a filled disc on screen
func (b *Ball) Draw(screen *ebiten.Image) error {
	if b.Img == nil {
		img, err := newDiscImage(int(b.Radius), b.Color)
		if err != nil {
			return err
		}
		b.Img = img
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(b.X-b.Radius), float64(b.Y-b.Radius))
	return screen.DrawImage(b.Img, opts)
}

// newDiscImage builds a radius*2 square image with a filled circle.
func newDiscImage(radius int, c color.Color) (*ebiten.Image, error) {
	d := radius * 2
	img, err := ebiten.NewImage(d, d, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}

	r, g, b, a := c.RGBA()
	pix := make([]byte, 4*d*d)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x-radius) + 0.5
			dy := float64(y-radius) + 0.5
			if dx*dx+dy*dy > float64(radius*radius) {
				continue
			}
			i := 4 * (y*d + x)
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(b >> 8)
			pix[i+3] = byte(a >> 8)
		}
	}
	if err := img.ReplacePixels(pix); err != nil {
		return nil, err
	}
	return img, nil
}

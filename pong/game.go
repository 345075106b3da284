package pong

import (
	"math"
	"math/rand"
	"time"
)

// ServeDelay is how long the ball stays frozen after a point lands,
// when the pause-and-delay rule set is active.
const ServeDelay = time.Second

// Options selects between the two rule sets the game ships with.
type Options struct {
	BallSpeed   float32
	PaddleSpeed float32
	// FullAngleServe samples the serve angle uniformly over [0, π)
	// instead of a ±60° band around horizontal. Steep, near-vertical
	// serves are possible.
	FullAngleServe bool
	// PauseAndDelay enables the pause key and the post-score serve
	// delay.
	PauseAndDelay bool
}

// ClassicOptions is the plain rule set: restricted serve angles, no
// pause, play resumes immediately after a score.
func ClassicOptions() Options {
	return Options{BallSpeed: 6, PaddleSpeed: 5}
}

// ArcadeOptions adds the pause key and a one-second serve delay, with
// unrestricted serve angles and a slightly faster ball.
func ArcadeOptions() Options {
	return Options{
		BallSpeed:      7,
		PaddleSpeed:    5,
		FullAngleServe: true,
		PauseAndDelay:  true,
	}
}

// Events reports what happened during one step, for the sound and
// broadcast collaborators. At most one of LeftScored/RightScored is
// set per frame.
type Events struct {
	PaddleHit   bool
	WallHit     bool
	LeftScored  bool
	RightScored bool
}

// Game holds the whole simulation state for one match. It is mutated
// in place by Step once per frame and read by the draw routine right
// after; nothing here is safe for concurrent use.
type Game struct {
	Player1 *Paddle `json:"player1"`
	Player2 *Paddle `json:"player2"`
	Ball    *Ball   `json:"ball"`
	Paused  bool    `json:"paused"`

	opts  Options
	delay time.Duration
	rand  *rand.Rand
}

// NewGame creates the initial centered layout for a width x height
// playfield.
func NewGame(width, height float32, opts Options) *Game {
	g := &Game{
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	g.Player1 = &Paddle{
		Position: Position{
			X: InitPaddleShift,
			Y: height/2 - InitPaddleHeight/2},
		Speed:  opts.PaddleSpeed,
		Width:  InitPaddleWidth,
		Height: InitPaddleHeight,
		Color:  ObjColor,
	}
	g.Player2 = &Paddle{
		Position: Position{
			X: width - InitPaddleWidth - InitPaddleShift,
			Y: height/2 - InitPaddleHeight/2},
		Speed:  opts.PaddleSpeed,
		Width:  InitPaddleWidth,
		Height: InitPaddleHeight,
		Color:  ObjColor,
	}
	g.Ball = &Ball{
		Position: Position{
			X: width / 2,
			Y: height / 2},
		Radius: InitBallRadius,
		Color:  ObjColor,
	}
	g.Ball.XVelocity, g.Ball.YVelocity = g.serveVelocity()

	return g
}

// Step advances the simulation by one frame. dt is the wall-clock time
// since the previous frame and only feeds the serve-delay countdown.
// width and height are the current drawable bounds.
func (g *Game) Step(dt time.Duration, in Input, width, height float32) Events {
	var ev Events

	if g.opts.PauseAndDelay {
		if in.JustPressed(KeyPause) {
			g.Paused = !g.Paused
		}
		if g.Paused {
			return ev
		}

		if g.delay > 0 {
			g.delay -= dt
			if g.delay < 0 {
				g.delay = 0
			}
			return ev
		}
	}

	g.movePaddles(in)
	ev.PaddleHit, ev.WallHit = g.moveBall(height)

	ev.LeftScored, ev.RightScored = g.checkScore(width)
	if ev.LeftScored || ev.RightScored {
		g.resetRound(width, height)
		if g.opts.PauseAndDelay {
			g.delay = ServeDelay
		}
	}

	return ev
}

// movePaddles applies the held movement keys. Both paddles track the
// same input; the last-reported key wins when up and down are held
// together. The origin is the top-left corner, so up is negative.
// Paddle positions are not clamped to the screen.
func (g *Game) movePaddles(in Input) {
	var dir float32
	for _, k := range in.Pressed() {
		switch k {
		case KeyUp:
			dir = -1
		case KeyDown:
			dir = 1
		}
	}

	g.Player1.Y += dir * g.Player1.Speed
	g.Player2.Y += dir * g.Player2.Speed
}

// moveBall integrates the ball position and resolves paddle and wall
// contact. Ball speed is conserved through paddle bounces; only the
// direction changes, taken from the offset ratio of the hit point.
func (g *Game) moveBall(yBound float32) (paddleHit, wallHit bool) {
	b := g.Ball
	b.X += b.XVelocity
	b.Y += b.YVelocity

	speed := b.Speed()

	// Left paddle: the ball's leading edge must sit inside the band at
	// the paddle's facing surface.
	surface := g.Player1.X + g.Player1.Width
	if b.X-b.Radius < surface && b.X-b.Radius > surface-g.Player1.Width {
		offset := (b.Y - g.Player1.CenterY()) / (g.Player1.Height / 2)
		if offset >= -1 && offset <= 1 {
			b.XVelocity = float32(math.Cos(float64(offset))) * speed
			b.YVelocity = float32(math.Sin(float64(offset))) * speed
			paddleHit = true
		}
	}

	surface = g.Player2.X
	if b.X+b.Radius > surface && b.X+b.Radius < surface+g.Player2.Width {
		offset := (b.Y - g.Player2.CenterY()) / (g.Player2.Height / 2)
		if offset >= -1 && offset <= 1 {
			// Ball leaves to the left after a right-paddle bounce.
			b.XVelocity = -float32(math.Cos(float64(offset))) * speed
			b.YVelocity = float32(math.Sin(float64(offset))) * speed
			paddleHit = true
		}
	}

	// Reflect off the horizontal walls. No position correction: the
	// ball may sit past the bound for a frame.
	if b.Y-b.Radius < 0 || b.Y+b.Radius > yBound {
		b.YVelocity = -b.YVelocity
		wallHit = true
	}

	return paddleHit, wallHit
}

// checkScore awards a point when the ball has left the playfield on
// either side.
func (g *Game) checkScore(xBound float32) (leftScored, rightScored bool) {
	if g.Ball.X-g.Ball.Radius < 0 {
		g.Player2.Score++
		return false, true
	}
	if g.Ball.X+g.Ball.Radius > xBound {
		g.Player1.Score++
		return true, false
	}
	return false, false
}

// resetRound recenters the ball and both paddles and serves again.
// Scores are kept.
func (g *Game) resetRound(width, height float32) {
	g.Ball.Position = Position{
		X: width / 2,
		Y: height / 2,
	}
	g.Ball.XVelocity, g.Ball.YVelocity = g.serveVelocity()

	g.Player1.Position = Position{
		X: InitPaddleShift,
		Y: height/2 - g.Player1.Height/2,
	}
	g.Player2.Position = Position{
		X: width - g.Player2.Width - InitPaddleShift,
		Y: height/2 - g.Player2.Height/2,
	}
}

// serveVelocity picks a fresh ball direction at the configured speed.
func (g *Game) serveVelocity() (vx, vy float32) {
	speed := float64(g.opts.BallSpeed)

	if g.opts.FullAngleServe {
		angle := g.rand.Float64() * math.Pi
		return float32(math.Cos(angle) * speed), float32(math.Sin(angle) * speed)
	}

	// Keep the angle within ±60° of horizontal so every serve has a
	// usable horizontal component; a coin flip picks the side.
	angle := (g.rand.Float64() - 0.5) * 2 * math.Pi / 3
	dir := 1.0
	if g.rand.Float64() < 0.5 {
		dir = -1.0
	}
	return float32(dir * math.Cos(angle) * speed), float32(math.Sin(angle) * speed)
}

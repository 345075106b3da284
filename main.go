package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"golang.org/x/net/websocket"

	"github.com/azriv/go-pong/pong"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

// Game drives the simulation from ebiten's frame loop and fans the
// step events out to the sound and websocket collaborators.
type Game struct {
	sim       *pong.Game
	hub       *Hub
	sounds    *Sounds
	lastFrame time.Time
}

// NewGame creates and initializes a new game
func NewGame(opts pong.Options, hub *Hub, sounds *Sounds) *Game {
	pong.InitFonts()
	return &Game{
		sim:       pong.NewGame(windowWidth, windowHeight, opts),
		hub:       hub,
		sounds:    sounds,
		lastFrame: time.Now(),
	}
}

// Update advances the game state by one frame and draws it
func (g *Game) Update(screen *ebiten.Image) error {
	now := time.Now()
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now

	w, h := screen.Size()
	ev := g.sim.Step(dt, g.input(), float32(w), float32(h))

	switch {
	case ev.LeftScored || ev.RightScored:
		g.sounds.Score()
	case ev.PaddleHit:
		g.sounds.PaddleHit()
	case ev.WallHit:
		g.sounds.WallHit()
	}

	g.hub.Broadcast(g.sim)

	return g.Draw(screen)
}

// frameInput is the merged key state for one frame: local keyboard
// plus whatever the websocket clients are holding.
type frameInput struct {
	pressed []pong.Key
	taps    map[pong.Key]bool
}

func (in frameInput) Pressed() []pong.Key { return in.pressed }

func (in frameInput) JustPressed(k pong.Key) bool { return in.taps[k] }

// input reads the keyboard and the hub. Keys are reported up before
// down, so down wins when both are held.
func (g *Game) input() pong.Input {
	remote := g.hub.Keys()
	in := frameInput{taps: map[pong.Key]bool{}}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) || remote.Up {
		in.pressed = append(in.pressed, pong.KeyUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) || remote.Down {
		in.pressed = append(in.pressed, pong.KeyDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || remote.PauseTapped {
		in.taps[pong.KeyPause] = true
	}

	return in
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) error {
	if err := screen.Fill(pong.BgColor); err != nil {
		return err
	}

	if err := g.sim.Player1.Draw(screen); err != nil {
		return err
	}
	if err := g.sim.Player2.Draw(screen); err != nil {
		return err
	}
	if err := g.sim.Ball.Draw(screen); err != nil {
		return err
	}

	pong.DrawScore(screen, g.sim.Player1.Score, g.sim.Player2.Score, pong.ArcadeFont)
	if g.sim.Paused {
		pong.DrawPaused(screen, pong.BigArcadeFont)
	}

	return ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	variant := flag.String("variant", "classic", `rule set: "classic" or "arcade" (pause key and serve delay)`)
	addr := flag.String("addr", "0.0.0.0:8080", "listen address for the spectator websocket")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	var opts pong.Options
	switch *variant {
	case "classic":
		opts = pong.ClassicOptions()
	case "arcade":
		opts = pong.ArcadeOptions()
	default:
		log.Fatalf("unknown variant %q", *variant)
	}

	sounds, err := NewSounds(!*mute)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("bootstraping new game...")
	hub := NewHub()
	g := NewGame(opts, hub, sounds)

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		fmt.Println("starting websocket server on", *addr)
		http.HandleFunc("/",
			func(w http.ResponseWriter, req *http.Request) {
				s := websocket.Server{Handler: websocket.Handler(hub.Serve)}
				s.ServeHTTP(w, req)
			})
		err := http.ListenAndServe(*addr, nil)
		if err != nil {
			panic("ListenAndServe: " + err.Error())
		}
	}()

	fmt.Println("starting the game...")
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}

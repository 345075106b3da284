package pong

// Key identifies a control the simulation understands. Where the
// pressed state comes from (keyboard, websocket, test script) is the
// caller's business.
type Key byte

const (
	KeyUp Key = iota
	KeyDown
	KeyPause
)

// Input supplies the key state for one frame. Pressed returns the held
// keys in a stable order; when several movement keys are held at once
// the last one reported wins. JustPressed reports edge-triggered taps
// and must fire on exactly one frame per physical press.
type Input interface {
	Pressed() []Key
	JustPressed(k Key) bool
}

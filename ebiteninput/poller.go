package ebiteninput

import "github.com/hajimehoshi/ebiten/v2"

// Poller is the subset of ebiten's input API the Source reads each frame.
// Tests substitute a fake.
type Poller interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	Wheel() (float64, float64)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	IsKeyPressed(key ebiten.Key) bool
}

// ebitenPoller reads live input from ebiten. Only valid inside Game.Update.
type ebitenPoller struct{}

func (ebitenPoller) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenPoller) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (ebitenPoller) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenPoller) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenPoller) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (ebitenPoller) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

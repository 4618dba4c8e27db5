package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks pointer and keyboard state per frame
type InputState struct {
	// Pointer
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	ScreenW, ScreenH int

	// Primary press this frame
	LeftJustPressed bool
	// Right drag pans the camera
	RightPressed bool
	ScrollY      float64

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

// trackedKeys are sampled every frame
var trackedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeyEscape, ebiten.KeySpace, ebiten.KeyF1,
}

func NewInputState(screenW, screenH int) *InputState {
	return &InputState{
		ScreenW:     screenW,
		ScreenH:     screenH,
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	for _, k := range trackedKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// Pointer returns the cursor in screen pixels, or false when it is outside
// the window
func (s *InputState) Pointer() (x, y int, ok bool) {
	return s.MouseX, s.MouseY, InViewport(s.MouseX, s.MouseY, s.ScreenW, s.ScreenH)
}

// Clicked reports a primary press inside the window this frame
func (s *InputState) Clicked() bool {
	_, _, ok := s.Pointer()
	return s.LeftJustPressed && ok
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// InViewport reports whether a screen point lies inside a w by h window
func InViewport(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

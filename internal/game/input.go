package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// directionKeys maps steering keys to directions. Arrows and WASD both
// work; kept as a slice so simultaneous presses enqueue in a fixed order.
var directionKeys = []struct {
	key glfw.Key
	dir Direction
}{
	{glfw.KeyUp, DirUp},
	{glfw.KeyDown, DirDown},
	{glfw.KeyLeft, DirLeft},
	{glfw.KeyRight, DirRight},
	{glfw.KeyW, DirUp},
	{glfw.KeyS, DirDown},
	{glfw.KeyA, DirLeft},
	{glfw.KeyD, DirRight},
}

// CollectActions turns this frame's key presses into queued commands.
// Direction keys enqueue moves (adds while shift is held); F flips,
// R revives, X removes the tail.
func CollectActions(window *glfw.Window, in *Input, queue *ActionQueue) {
	shift := window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		window.GetKey(glfw.KeyRightShift) == glfw.Press

	for _, dk := range directionKeys {
		if !in.JustPressed(window, dk.key) {
			continue
		}
		if shift {
			queue.Enqueue(AddAction(dk.dir))
		} else {
			queue.Enqueue(MoveAction(dk.dir))
		}
	}
	if in.JustPressed(window, glfw.KeyF) {
		queue.Enqueue(Action{Kind: ActionFlip})
	}
	if in.JustPressed(window, glfw.KeyR) {
		queue.Enqueue(Action{Kind: ActionRevive})
	}
	if in.JustPressed(window, glfw.KeyX) {
		queue.Enqueue(Action{Kind: ActionRemoveTail})
	}
}

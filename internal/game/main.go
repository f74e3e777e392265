package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Settings from file, seed from environment or clock.
	cfgPath := os.Getenv("TILESNAKE_SETTINGS")
	if cfgPath == "" {
		cfgPath = "settings.yaml"
	}
	cfg, err := LoadSettings(cfgPath)
	if err != nil {
		panic(err)
	}
	SetVolume(cfg.Volume)

	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("TILESNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bgR, bgG, bgB := Palette.Background.floats()
	gl.ClearColor(bgR, bgG, bgB, 1.0)

	// Core wiring.
	events := NewEventBus()
	cfg.Bind(events)
	grid := NewGrid(GridRows, GridCols)
	snake := NewSnake(grid, cfg, events)
	queue := NewActionQueue(snake, cfg)
	queue.SetDefault(defaultActionFor(cfg.DefaultAction))
	pilot := NewAutopilot(grid, snake, queue)
	apples := NewAppleSystem(grid, seed^0xB0B, AppleTarget)
	session := NewGameSession(events)

	// Sounds ride on core notifications.
	events.Subscribe(EventAppleEaten, func(Event) { PlaySound(SoundEat) })
	events.Subscribe(EventMoveFailed, func(Event) { PlaySound(SoundFail) })
	events.Subscribe(EventCrashed, func(Event) { PlaySound(SoundCrash) })
	events.Subscribe(EventRevived, func(Event) { PlaySound(SoundRevive) })
	events.Subscribe(EventFlipped, func(Event) { PlaySound(SoundFlip) })

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	input := NewInput()

	// Reusable render buffers.
	var tileBuf, glowBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			if session.State == StatePlaying {
				session.EndRun()
			} else {
				window.SetShouldClose(true)
			}
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				if err := session.StartRun(grid, snake, queue, apples, seed); err != nil {
					panic(err)
				}
				seed++
			}

		case StatePlaying:
			CollectActions(window, input, queue)
			if input.JustPressed(window, glfw.KeyP) {
				cfg.SetAutopilot(!cfg.Autopilot)
			}

			for i := session.Tick(dt); i > 0; i-- {
				if cfg.Autopilot {
					pilot.Step()
				}
				queue.RunNext()
			}
			apples.Update(dt)
		}

		rend.BeginFrame(fbW, fbH)
		tileBuf = BoardSprites(grid, snake, now, fbW, fbH, tileBuf)
		rend.DrawSprites(tileBuf, fbW, fbH)
		glowBuf = GlowSprites(grid, snake, now, fbW, fbH, glowBuf)
		rend.DrawGlowSprites(glowBuf, fbW, fbH)
		RenderHUD(rend, session, snake, cfg, fbW, fbH)
		rend.FlushText(fbW, fbH)
		window.SwapBuffers()
	}
}

// defaultActionFor maps the settings string to the queue's fallback.
func defaultActionFor(name string) *Action {
	switch name {
	case "move":
		return &Action{Kind: ActionMove}
	case "add":
		return &Action{Kind: ActionAdd}
	case "flip":
		return &Action{Kind: ActionFlip}
	}
	return nil
}

package lab

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, `AR Chemistry Flame Test
  Move the cursor over a beaker to dip the active finger.
  Move into the ignition area to light the chemical.
  Touch the water beaker to clean the finger.
  Bring two flames within 60px to observe mixing.
  Touch a flame to a chemical-coated finger to transfer it.
  Keys: 1-5 select finger, TAB swap hand, R reset, H help, Q/Esc quit.`)
	fmt.Fprintln(os.Stderr, FlameTestTheory)
}

// RunDesktop opens the window and runs the interaction loop until the
// user quits. It must be called from the main goroutine.
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

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("FLAMETEST_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Systems.
	bus := NewEventBus()
	sm := NewStateMachine(bus)
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	scene := NewScene()
	camera := NewBenchCamera()
	hands := NewCursorHands(window)
	input := NewInput()
	frame := NewFrame(WindowWidth, WindowHeight)

	// Visual and audio feedback rides the event bus, so the state
	// machine stays free of rendering concerns.
	bus.Subscribe(EventDip, func(e Event) {
		particles.SpawnInteraction(e.X, e.Y, Chemicals[e.Chem].ParticleColor)
		PlaySound(SoundDip)
	})
	bus.Subscribe(EventClean, func(e Event) {
		particles.SpawnCleaning(e.X, e.Y)
		PlaySound(SoundClean)
	})
	bus.Subscribe(EventIgnite, func(e Event) {
		particles.SpawnExplosion(e.X, e.Y, Chemicals[e.Chem].Color, Chemicals[e.Chem].Intensity)
		PlaySound(SoundIgnite)
	})
	bus.Subscribe(EventMix, func(e Event) {
		particles.SpawnMixing(e.X, e.Y, e.X2, e.Y2, e.MixColor())
		PlaySound(SoundMix)
	})
	bus.Subscribe(EventTransfer, func(e Event) {
		particles.SpawnExplosion(e.X, e.Y, Chemicals[e.Chem].Color, Chemicals[e.Chem].Intensity*0.7)
		PlaySound(SoundTransfer)
	})

	frameCount := 0
	fps := 0
	fpsFrames := 0
	fpsLast := glfw.GetTime()

	for !window.ShouldClose() {
		now := glfw.GetTime()
		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press || window.GetKey(glfw.KeyQ) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			sm.ResetAll()
			particles.Clear()
			PlaySound(SoundReset)
		}
		if input.JustPressed(window, glfw.KeyH) {
			printHelp()
		}
		hands.HandleKeys(input, window)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		detected := hands.Hands()
		sm.Update(detected, frame.W, frame.H, now)

		camera.NextFrame(frame)
		scene.Render(frame, sm, particles, detected, frameCount, fps)

		rend.Upload(frame)
		rend.Draw(fbW, fbH)
		window.SwapBuffers()

		frameCount++
		fpsFrames++
		if now-fpsLast >= 1.0 {
			fps = fpsFrames
			fpsFrames = 0
			fpsLast = now
		}
	}
}

package game

import (
	"log"
	"time"

	"vrgaze/internal/components"
	"vrgaze/internal/config"
	"vrgaze/internal/engine"
	"vrgaze/internal/feedback"
	"vrgaze/internal/gaze"
	"vrgaze/internal/input"
	"vrgaze/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config   config.Config
	World    *world.World
	Resolver *gaze.Resolver
	Input    *input.VRInput
	Feedback *feedback.Feedback
	Speaker  *feedback.SpeakerPlayer

	DebugMode bool
	hud       hudState

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	return &Game{
		Config: cfg,
		World:  world.New(cfg.WindowWidth, cfg.WindowHeight),
		Input:  input.NewVRInput(cfg.DoubleClick),
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(g.Config.WindowWidth), int32(g.Config.WindowHeight), "VR Gaze")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	if err := g.World.LoadScene(g.Config.Scene); err != nil {
		return err
	}
	if err := g.Setup(); err != nil {
		return err
	}
	defer g.Shutdown()

	initHUDStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

// Setup initializes the loaded world and wires the resolver, input and
// feedback together.
func (g *Game) Setup() error {
	g.World.Initialize()

	g.World.Reticle.DefaultDistance = g.Config.ReticleDistance
	g.World.Reticle.UseNormal = g.Config.ReticleUseNormal

	cfg := g.Config.Gaze(g.World.Camera)
	switch g.Config.Mode {
	case config.ModeWorld:
		r, err := gaze.New(cfg, g.World.Physics)
		if err != nil {
			return err
		}
		g.Resolver = r
	default:
		c, err := gaze.NewCombined(cfg, g.World.Physics, g.World.UI, g.World.Camera)
		if err != nil {
			return err
		}
		g.Resolver = c.Resolver
	}
	g.Resolver.SetReticle(g.World.Reticle)
	g.Resolver.SetDebugSink(g.World.Debug)

	if err := g.Resolver.Start(g.Input); err != nil {
		return err
	}
	log.Printf("Gaze: %s resolver started", g.Config.Mode)

	g.hud.attach(g.Resolver)

	var player feedback.Player = silentPlayer{}
	if g.Config.Audio {
		g.Speaker = feedback.NewSpeakerPlayer()
		if err := g.Speaker.Initialize(); err != nil {
			log.Printf("Audio: disabled: %v", err)
		} else {
			player = g.Speaker
		}
	}
	g.Feedback = feedback.New(player)
	g.Feedback.Attach(&g.Resolver.OnRaycastHit, g.Input)
	return nil
}

func (g *Game) Shutdown() {
	if g.Feedback != nil {
		g.Feedback.Detach()
	}
	if g.Resolver != nil {
		g.Resolver.Stop()
		log.Println("Gaze: resolver stopped")
	}
	if g.Speaker != nil {
		g.Speaker.Close()
	}
}

// Step runs one frame of simulation: scene, gaze, then input so signals reach
// this frame's target.
func (g *Game) Step(deltaTime float32, held bool, now time.Time) {
	g.World.Update(deltaTime)
	g.Resolver.Tick()
	g.Input.Process(held, now)
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsWindowResized() {
		g.World.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.toggleMouseLook()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	// The HUD owns the mouse while the cursor is free
	held := rl.IsKeyDown(rl.KeySpace)
	if g.mouseLook() {
		held = held || rl.IsMouseButtonDown(rl.MouseLeftButton)
	}
	g.Step(rl.GetFrameTime(), held, time.Now())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) headPose() *components.HeadPose {
	for obj := g.World.Camera.GetGameObject(); obj != nil; obj = obj.Parent {
		if hp := engine.GetComponent[*components.HeadPose](obj); hp != nil {
			return hp
		}
	}
	return nil
}

func (g *Game) mouseLook() bool {
	hp := g.headPose()
	return hp != nil && hp.MouseLook
}

func (g *Game) toggleMouseLook() {
	hp := g.headPose()
	if hp == nil {
		return
	}
	hp.MouseLook = !hp.MouseLook
	if hp.MouseLook {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.World.Draw()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

type silentPlayer struct{}

func (silentPlayer) Play(feedback.Sound) {}

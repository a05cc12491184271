package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/automoto/stickfight/scenes"
	"github.com/automoto/stickfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type quitter interface {
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(seed uint64) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, seed)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file (default: ./stickfight.yaml if present)")
	seed := flag.Uint64("seed", 0, "match seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "draw collision bodies and TPS")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	scale := flag.Float64("scale", 0, "window scale factor")
	flag.Parse()

	used, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if used != "" {
		log.Printf("Loaded config from %s", used)
	}

	// Flags win over file and environment
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	if *debug {
		config.Debug.Overlay = true
	}
	if *mute {
		config.Audio.Muted = true
	}
	if *scale > 0 {
		config.C.Scale = *scale
	}
	if config.Debug.Seed == 0 {
		config.Debug.Seed = uint64(time.Now().UnixNano())
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := systems.InitAudio(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}

	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(config.Debug.Seed)); err != nil {
		log.Fatal(err)
	}
}

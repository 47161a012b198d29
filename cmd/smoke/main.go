package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"smokesim/pkg/fluid"
)

const (
	gridSize    = 128
	windowScale = 4

	dt        = 0.1
	diffusion = 0.0
	viscosity = 0.0
	force     = 5.0
	source    = 100.0
)

// Game drives the solver from mouse input and renders the density field:
// left-drag stirs the fluid, right button emits smoke, R resets.
type Game struct {
	sim          *fluid.Fluid
	pixels       []byte
	prevX, prevY int
}

func NewGame() (*Game, error) {
	sim, err := fluid.New(gridSize, diffusion, viscosity)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:    sim,
		pixels: make([]byte, gridSize*gridSize*4),
		prevX:  -1,
	}, nil
}

func (g *Game) Update() error {
	g.sim.ClearSources()

	x, y := ebiten.CursorPosition()
	if x >= 0 && x < gridSize && y >= 0 && y < gridSize {
		i, j := x+1, y+1
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.prevX >= 0 {
			g.sim.AddForce(i, j, force*float32(x-g.prevX), force*float32(y-g.prevY))
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.sim.AddDensity(i, j, source)
		}
	}
	g.prevX, g.prevY = x, y

	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	g.sim.Step(dt)
	g.renderDensity()
	return nil
}

func (g *Game) renderDensity() {
	d := g.sim.Density()
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			val, _ := d.Value(x+1, y+1)
			r, gr, b := sciColor(val, 0, d.MaxValue)
			p := (y*gridSize + x) * 4
			g.pixels[p+0] = r
			g.pixels[p+1] = gr
			g.pixels[p+2] = b
			g.pixels[p+3] = 0xff
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pixels)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridSize, gridSize
}

func main() {
	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(gridSize*windowScale, gridSize*windowScale)
	ebiten.SetWindowTitle("smoke")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

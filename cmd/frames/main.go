// Command frames runs the smoke solver headless and writes the density
// field as a PNG sequence. The initial condition is a ring of smoke around
// the grid center stirred by uniform random velocity noise.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"smokesim/pkg/fluid"
)

var (
	gridFlag   = flag.Int("n", 128, "interior grid size")
	stepsFlag  = flag.Int("steps", 200, "number of simulation steps")
	scaleFlag  = flag.Int("scale", 4, "output pixels per cell")
	outFlag    = flag.String("out", "frames", "output directory")
	dtFlag     = flag.Float64("dt", 0.1, "timestep")
	diffFlag   = flag.Float64("diff", 0.0, "density diffusion rate")
	viscFlag   = flag.Float64("visc", 0.0, "viscosity")
	seedFlag   = flag.Uint64("seed", 1, "seed for the initial velocity noise")
	forceFlag  = flag.Float64("force", 5.0, "velocity noise amplitude")
	sourceFlag = flag.Float64("source", 100.0, "smoke ring source strength")
)

func main() {
	flag.Parse()

	sim, err := fluid.New(*gridFlag, float32(*diffFlag), float32(*viscFlag))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		log.Fatal(err)
	}

	if err := sim.SetSources(seedSources(sim)); err != nil {
		log.Fatal(err)
	}

	dt := float32(*dtFlag)
	for step := 0; step < *stepsFlag; step++ {
		sim.Step(dt)
		if step == 0 {
			// The seed acts as a single impulse, not a continuous emitter.
			sim.ClearSources()
		}

		name := filepath.Join(*outFlag, fmt.Sprintf("frame-%04d.png", step))
		if err := writeFrame(sim, name); err != nil {
			log.Fatal(err)
		}
		if (step+1)%25 == 0 {
			log.Printf("wrote %d/%d frames", step+1, *stepsFlag)
		}
	}
}

// seedSources builds the initial source grids: an annulus of smoke between
// n/8 and n/4 around the center, plus uniform random velocity everywhere.
func seedSources(sim *fluid.Fluid) (dens, u, v []float32) {
	n, sz := sim.N(), sim.Size()
	numCells := sz * sz
	dens = make([]float32, numCells)
	u = make([]float32, numCells)
	v = make([]float32, numCells)

	rng := rand.New(rand.NewPCG(*seedFlag, *seedFlag))
	center := float64(sz) / 2
	rOuter := float64(n) / 4
	rInner := float64(n) / 8

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cell := i*sz + j
			r := math.Hypot(float64(i)-center, float64(j)-center)
			if r >= rInner && r <= rOuter {
				dens[cell] = float32(*sourceFlag)
			}
			u[cell] = float32(*forceFlag * (rng.Float64()*2 - 1))
			v[cell] = float32(*forceFlag * (rng.Float64()*2 - 1))
		}
	}
	return dens, u, v
}

func writeFrame(sim *fluid.Fluid, name string) error {
	n := sim.N()
	scale := *scaleFlag
	d := sim.Density()

	dc := gg.NewContext(n*scale, n*scale)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			val, err := d.Value(x+1, y+1)
			if err != nil {
				return err
			}
			t := 0.0
			if d.MaxValue > 0 {
				t = float64(val / d.MaxValue)
			}
			t = math.Min(math.Max(t, 0), 1)
			// Warm body-heat ramp: black through red and orange to white.
			dc.SetRGB(t, t*t, t*t*t)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return dc.SavePNG(name)
}

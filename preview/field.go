//go:build !js

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
	"github.com/simukka/voidpage/particles"
	"github.com/spf13/cobra"
)

// statsSurface is a headless particles.Surface that tracks the extent of
// the drawn field.
type statsSurface struct {
	width, height int
	draws         int
	maxAbs        float32
}

func (s *statsSurface) Size() (int, int, float64) { return s.width, s.height, 1 }

func (s *statsSurface) Resize(width, height int, pixelRatio float64) {
	s.width, s.height = width, height
}

func (s *statsSurface) Draw(frame particles.Frame) {
	s.draws++
	for _, v := range frame.Positions {
		if v < 0 {
			v = -v
		}
		if v > s.maxAbs {
			s.maxAbs = v
		}
	}
}

func (s *statsSurface) Release() {}

func newFieldCmd() *cobra.Command {
	cfg := particles.DefaultConfig()
	var seed uint32
	var ticks int

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Run the particle field headless and report its extent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(cmd.OutOrStdout(), cfg, seedFlag(seed), ticks)
		},
	}
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "number of particles")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "random seed, 0 for the clock")
	cmd.Flags().IntVar(&ticks, "ticks", 1000, "ticks to simulate")
	return cmd
}

func runField(out io.Writer, cfg particles.Config, seed uint32, ticks int) error {
	frames := common.NewFrameQueue()
	surface := &statsSurface{width: 1280, height: 720}
	sim := particles.NewSimulator(cfg, frames, common.NewSeededRNG(seed))
	sim.Start(surface)
	defer sim.Stop()

	for i := 0; i < ticks; i++ {
		frames.Flush(float64(i) * 1000 / 60)
	}

	field := sim.Field()
	if field == nil {
		return errors.New("field: simulator did not start")
	}
	fmt.Fprintf(out, "particles: %d\n", len(field.Particles))
	fmt.Fprintf(out, "frames:    %d\n", surface.draws)
	fmt.Fprintf(out, "extent:    %.4f (bound %.0f)\n", surface.maxAbs, cfg.Bound)
	fmt.Fprintf(out, "rotation:  %.4f rad\n", field.Rotation)
	return nil
}

//go:build !js

package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
	"github.com/simukka/voidpage/rain"
	"github.com/spf13/cobra"
)

func newRainCmd() *cobra.Command {
	cfg := rain.DefaultConfig()
	var seed uint32
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "rain",
		Short: "Run the digital rain in the terminal (Esc or q to quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(err, "rain: open terminal")
			}
			if err := screen.Init(); err != nil {
				return errors.Wrap(err, "rain: init terminal")
			}
			defer screen.Fini()
			cfg.GlyphSize = 1
			return runRain(screen, cfg, common.NewSeededRNG(seedFlag(seed)), duration)
		},
	}
	cmd.Flags().StringVar(&cfg.Color, "color", cfg.Color, "glyph color")
	cmd.Flags().IntVar(&cfg.Speed, "speed", cfg.Speed, "milliseconds between advances")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "random seed, 0 for the clock")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long, 0 to run until quit")
	return cmd
}

func runRain(screen tcell.Screen, cfg rain.Config, rng common.RNG, duration time.Duration) error {
	surface := rain.NewTermSurface(screen)
	frames := common.NewFrameQueue()
	r := rain.NewRenderer(cfg, rng)
	r.Start(frames, surface)
	defer r.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				surface.Fit()
				r.Resize(surface.Size())
			}
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if duration > 0 && elapsed >= duration {
				return nil
			}
			frames.Flush(float64(elapsed.Milliseconds()))
			surface.Show()
		}
	}
}

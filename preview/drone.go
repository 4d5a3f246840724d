//go:build !js

package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/audio"
	"github.com/simukka/voidpage/common"
	"github.com/spf13/cobra"
)

const timerStep = 100 * time.Millisecond

func newDroneCmd() *cobra.Command {
	cfg := audio.AmbientConfig
	var seed uint32
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "drone",
		Short: "Play the ambient drone on the default audio device",
		RunE: func(cmd *cobra.Command, args []string) error {
			rate := beep.SampleRate(48000)
			if err := speaker.Init(rate, rate.N(timerStep)); err != nil {
				return errors.Wrap(err, "drone: init speaker")
			}
			defer speaker.Close()

			timers := common.NewManualTimers()
			backend := &audio.BeepBackend{Rate: rate, Play: func(s beep.Streamer) { speaker.Play(s) }}
			engine := audio.NewEngine(cfg, backend, timers, common.NewSeededRNG(seedFlag(seed)))
			if err := engine.Init(); err != nil {
				return err
			}
			defer engine.Close()

			out := cmd.OutOrStdout()
			engine.Toggle()
			fmt.Fprintf(out, "fading in to %.3f over %.0fs\n", cfg.MasterVolume, cfg.FadeTime)
			run(timers, duration)

			engine.Toggle()
			fmt.Fprintln(out, "fading out")
			run(timers, time.Duration(cfg.FadeTime*float64(time.Second)))
			fmt.Fprintf(out, "%d crackles\n", engine.Crackles())
			return nil
		},
	}
	cmd.Flags().Float64Var(&cfg.MasterVolume, "volume", cfg.MasterVolume, "unmuted master gain")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "random seed, 0 for the clock")
	cmd.Flags().DurationVar(&duration, "duration", 20*time.Second, "play time before fading out")
	return cmd
}

// run drives timers in real time for d.
func run(timers *common.ManualTimers, d time.Duration) {
	ticker := time.NewTicker(timerStep)
	defer ticker.Stop()
	deadline := time.Now().Add(d)
	for now := range ticker.C {
		timers.Advance(float64(timerStep.Milliseconds()))
		if !now.Before(deadline) {
			return
		}
	}
}

//go:build !js

// Command preview runs the page effects natively: the rain in a terminal,
// the ambient drone on the speaker and a headless particle field.
package main

import (
	"os"
	"time"

	"github.com/simukka/voidpage/common"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "preview",
		Short:         "Preview the links page effects outside the browser",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.EnableDebug = debug
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log debug messages")
	root.AddCommand(newRainCmd(), newDroneCmd(), newFieldCmd())
	return root
}

// seedFlag returns the page seed: the flag value, or the clock when zero.
func seedFlag(seed uint32) uint32 {
	if seed != 0 {
		return seed
	}
	return uint32(time.Now().UnixNano())
}

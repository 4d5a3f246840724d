//go:build !js

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/simukka/voidpage/particles"
)

func TestRunField(t *testing.T) {
	var out bytes.Buffer
	if err := runField(&out, particles.DefaultConfig(), 42, 1000); err != nil {
		t.Fatal(err)
	}
	report := out.String()
	for _, want := range []string{"particles: 800", "frames:    1000", "rotation:  0.2000 rad"} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected %q in report:\n%s", want, report)
		}
	}
}

func TestFieldCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"field", "--count", "10", "--ticks", "5", "--seed", "7"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "particles: 10") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
}

func TestSeedFlag(t *testing.T) {
	if seedFlag(5) != 5 {
		t.Error("Expected an explicit seed to be kept")
	}
}

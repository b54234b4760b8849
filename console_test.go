package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/seqsense/targetrange/config"
	"github.com/seqsense/targetrange/run"
)

func newTestConsole() *console {
	return &console{
		game: run.New(config.Default(), nil, rand.New(rand.NewSource(1)), nil),
	}
}

func TestConsole_Sensitivity(t *testing.T) {
	testCases := map[string]struct {
		line     string
		expected string
		value    float64
	}{
		"Default": {
			line:     "sensitivity",
			expected: "0.0005",
			value:    0.0005,
		},
		"Small": {
			line:     "sensitivity 0.0003",
			expected: "0.0003",
			value:    0.0003,
		},
		"SliderMax": {
			line:     "sensitivity 0.003",
			expected: "0.003",
			value:    0.003,
		},
		"Large": {
			line:     "sensitivity 0.25",
			expected: "0.25",
			value:    0.25,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newTestConsole()
			res, err := c.Run(tt.line)
			if err != nil {
				t.Fatal(err)
			}
			if res != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, res)
			}
			if v := c.game.Look().Sensitivity(); v != tt.value {
				t.Errorf("Expected sensitivity %v, got %v", tt.value, v)
			}
		})
	}
}

func TestConsole_SensitivityInvalid(t *testing.T) {
	c := newTestConsole()
	if _, err := c.Run("sensitivity -1"); err == nil {
		t.Error("Negative sensitivity must be rejected")
	}
	if _, err := c.Run("sensitivity 1 2"); err != errArgumentNumber {
		t.Errorf("Expected %v, got %v", errArgumentNumber, err)
	}
	if _, err := c.Run("sensitivity Inf"); err == nil {
		t.Error("Infinite sensitivity must be rejected")
	}
	if v := c.game.Look().Sensitivity(); v != 0.0005 {
		t.Errorf("Rejected values must not change sensitivity, got %v", v)
	}
}

func TestConsole_Orientation(t *testing.T) {
	c := newTestConsole()
	c.game.Dispatch(run.StartRequested{})
	c.game.Dispatch(run.BeginConfirmed{})

	res, err := c.Run("orientation 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if res != "1 1.49226" {
		t.Errorf("Pitch must be clamped, got %s", res)
	}
	if o := c.game.Look().Orientation(); o.Yaw != 1 {
		t.Errorf("Expected yaw 1, got %f", o.Yaw)
	}
}

func TestConsole_Run(t *testing.T) {
	c := newTestConsole()

	testCases := map[string]struct {
		line     string
		expected string
		err      error
	}{
		"Empty": {
			line: "  ",
		},
		"Phase": {
			line:     "phase",
			expected: "0",
		},
		"Score": {
			line:     "score",
			expected: "0 0 0",
		},
		"NoTargets": {
			line: "targets",
		},
		"Invalid": {
			line: "fire",
			err:  errInvalidCommand,
		},
		"TooManyArgs": {
			line: "phase 1",
			err:  errArgumentNumber,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			res, err := c.Run(tt.line)
			if err != tt.err {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if res != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, res)
			}
		})
	}
}

func TestConsole_Targets(t *testing.T) {
	c := newTestConsole()
	c.game.Dispatch(run.StartRequested{})

	res, err := c.Run("targets")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(res, "\n")); n != 15 {
		t.Errorf("Expected 15 targets, got %d", n)
	}

	if _, err := c.Run("targets x"); err == nil {
		t.Error("Non-numeric argument must be rejected")
	}
}

func TestFormatConsoleValue(t *testing.T) {
	testCases := map[string]struct {
		v        float64
		expected string
	}{
		"Zero":        {0, "0"},
		"Integer":     {1500, "1500"},
		"Negative":    {-50, "-50"},
		"Sensitivity": {0.0005, "0.0005"},
		"Fraction":    {-2.345678, "-2.34568"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if s := formatConsoleValue(tt.v); s != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, s)
			}
		})
	}
}

func TestConsole_Abort(t *testing.T) {
	c := newTestConsole()
	c.game.Dispatch(run.StartRequested{})
	c.game.Dispatch(run.BeginConfirmed{})

	if _, err := c.Run("abort"); err != nil {
		t.Fatal(err)
	}
	if p := c.game.Phase(); p != run.Finished {
		t.Errorf("Expected %s, got %s", run.Finished, p)
	}
}

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/imgview"
	"github.com/gogpu/imgview/internal/config"
	"github.com/gogpu/imgview/internal/monitor"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantImage string
		wantSet   []string
	}{
		{"defaults", nil, "grades.png", nil},
		{"long", []string{"-image", "a.png"}, "a.png", []string{"image"}},
		{"short", []string{"-i", "b.png"}, "b.png", []string{"image"}},
		{"percent and screen", []string{"-percent", "50", "-screen", "800x600"}, "grades.png", []string{"percent", "screen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseFlags(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if o.image != tt.wantImage {
				t.Errorf("image = %q, want %q", o.image, tt.wantImage)
			}
			if len(o.set) != len(tt.wantSet) {
				t.Errorf("set = %v, want %v", o.set, tt.wantSet)
			}
			for _, name := range tt.wantSet {
				if !o.set[name] {
					t.Errorf("flag %q not recorded as set", name)
				}
			}
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	if _, err := parseFlags([]string{"-nope"}, io.Discard); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}

func TestMerge_Precedence(t *testing.T) {
	cfg := config.Default()
	cfg.Image = "from-config.png"
	cfg.ScreenPercent = 70

	o, err := parseFlags([]string{"-percent", "40"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got, err := merge(cfg, o)
	if err != nil {
		t.Fatalf("merge() error = %v", err)
	}
	if got.Image != "from-config.png" {
		t.Errorf("Image = %q, config should win over the flag default", got.Image)
	}
	if got.ScreenPercent != 40 {
		t.Errorf("ScreenPercent = %d, explicit flag should win", got.ScreenPercent)
	}
}

func TestMerge_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"percent too large", []string{"-percent", "101"}, config.ErrInvalid},
		{"percent zero", []string{"-percent", "0"}, config.ErrInvalid},
		{"bad screen", []string{"-screen", "big"}, monitor.ErrBadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseFlags(tt.args, io.Discard)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := merge(config.Default(), o); !errors.Is(err, tt.want) {
				t.Errorf("merge() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterpolation(t *testing.T) {
	tests := []struct {
		in   string
		want gg.InterpolationMode
	}{
		{config.InterpNearest, gg.InterpNearest},
		{config.InterpBilinear, gg.InterpBilinear},
		{config.InterpBicubic, gg.InterpBicubic},
		{"", gg.InterpBilinear},
	}
	for _, tt := range tests {
		if got := interpolation(tt.in); got != tt.want {
			t.Errorf("interpolation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	orig := imgview.Logger()
	homedir.DisableCache = true
	t.Cleanup(func() {
		imgview.SetLogger(orig)
		homedir.DisableCache = false
	})

	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badConfig, []byte("unknown_key = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bad flag", []string{"-nope"}, imgview.ErrConfig},
		{"bad config", []string{"-config", badConfig}, imgview.ErrConfig},
		{"missing config", []string{"-config", filepath.Join(dir, "none.toml")}, imgview.ErrConfig},
		{"image not found", []string{"-image", filepath.Join(dir, "none.png"), "-screen", "800x600"}, imgview.ErrIO},
		{"image checked before monitor", []string{"-image", filepath.Join(dir, "none.png")}, imgview.ErrIO},
		{"garbage checked before monitor", []string{"-image", badConfig}, imgview.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", dir)
			err := run(tt.args, io.Discard)
			if imgview.Kind(err) != tt.want {
				t.Errorf("run() error = %v, want kind %v", err, tt.want)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	orig := imgview.Logger()
	t.Cleanup(func() { imgview.SetLogger(orig) })

	for _, arg := range []string{"-h", "-help"} {
		if err := run([]string{arg}, io.Discard); err != nil {
			t.Errorf("run(%s) error = %v, want nil", arg, err)
		}
	}
}

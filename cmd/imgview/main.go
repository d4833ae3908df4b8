// Command imgview shows an image in a window sized to fit the screen.
//
// Usage:
//
//	imgview [-image path] [-config file] [-percent n] [-screen WxH] [-v]
//
// Flags win over the config file, which wins over the built-in defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gg"

	"github.com/gogpu/imgview"
	"github.com/gogpu/imgview/integration/gogpuview"
	"github.com/gogpu/imgview/internal/config"
	"github.com/gogpu/imgview/internal/monitor"
)

// The window system and GLFW need the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.SetFlags(0)
		log.Fatalf("imgview: %v", err)
	}
}

// options holds the parsed command line. set records which flags were
// given explicitly.
type options struct {
	image   string
	config  string
	percent int
	screen  string
	verbose bool
	set     map[string]bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("imgview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.image, "image", "grades.png", "image file to show")
	fs.StringVar(&o.image, "i", "grades.png", "shorthand for -image")
	fs.StringVar(&o.config, "config", "", "config file (default "+config.DefaultPath+")")
	fs.IntVar(&o.percent, "percent", imgview.DefaultScreenPercent, "largest share of the screen the window may take, 1..100")
	fs.StringVar(&o.screen, "screen", "", "screen size as WxH instead of asking the primary monitor")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if name == "i" {
			name = "image"
		}
		o.set[name] = true
	})
	return o, nil
}

// merge applies explicit flags on top of cfg.
func merge(cfg config.Config, o options) (config.Config, error) {
	if o.set["image"] {
		cfg.Image = o.image
	}
	if o.set["percent"] {
		cfg.ScreenPercent = o.percent
	}
	if o.set["screen"] {
		w, h, err := monitor.ParseSize(o.screen)
		if err != nil {
			return cfg, err
		}
		cfg.ScreenWidth, cfg.ScreenHeight = w, h
	}
	return cfg, cfg.Validate()
}

func interpolation(name string) gg.InterpolationMode {
	switch name {
	case config.InterpNearest:
		return gg.InterpNearest
	case config.InterpBicubic:
		return gg.InterpBicubic
	default:
		return gg.InterpBilinear
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return imgview.Wrap(imgview.ErrConfig, err)
	}
	imgview.SetLogger(newLogger(stderr, o.verbose))

	cfg, err := config.Load(o.config)
	if err != nil {
		return imgview.Wrap(imgview.ErrConfig, err)
	}
	cfg, err = merge(cfg, o)
	if err != nil {
		return imgview.Wrap(imgview.ErrConfig, err)
	}

	v, err := imgview.Open(cfg.Image,
		imgview.WithScreenPercent(cfg.ScreenPercent),
		imgview.WithInfo(cfg.ShowInfo))
	if err != nil {
		return err
	}

	screen, err := screenSize(cfg)
	if err != nil {
		return err
	}
	win, scale := v.WindowSize(screen)
	imgview.Logger().Info("opening window", "image", v.Name(), "window", win, "scale", scale)

	opts := gogpuview.DefaultOptions()
	opts.Title = cfg.Title
	opts.Window = win
	opts.Interpolation = interpolation(cfg.Interpolation)
	return gogpuview.Run(v, opts)
}

func screenSize(cfg config.Config) (imgview.Size, error) {
	w, h, err := monitor.Resolve(cfg.Screen())
	if err != nil {
		return imgview.Size{}, imgview.Wrap(imgview.ErrNoPrimaryMonitor, fmt.Errorf("screen size: %w", err))
	}
	return imgview.Size{Width: w, Height: h}, nil
}

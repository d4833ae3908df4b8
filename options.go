package imgview

// Option configures a Viewer during creation.
//
// Example:
//
//	v, err := imgview.Open("photo.jpg",
//	    imgview.WithScreenPercent(75),
//	    imgview.WithInfo(true))
type Option func(*viewerOptions)

type viewerOptions struct {
	screenPercent int
	keymap        Keymap
	showInfo      bool
}

func defaultOptions() viewerOptions {
	return viewerOptions{
		screenPercent: DefaultScreenPercent,
		keymap:        DefaultKeymap(),
	}
}

// WithScreenPercent limits the initial window to percent of the primary
// monitor on each axis. Values outside 1..100 are ignored.
func WithScreenPercent(percent int) Option {
	return func(o *viewerOptions) {
		if percent >= 1 && percent <= 100 {
			o.screenPercent = percent
		}
	}
}

// WithKeymap replaces the default key bindings. A nil map is ignored.
func WithKeymap(k Keymap) Option {
	return func(o *viewerOptions) {
		if k != nil {
			o.keymap = k
		}
	}
}

// WithInfo sets whether the info overlay is shown at startup.
func WithInfo(show bool) Option {
	return func(o *viewerOptions) {
		o.showInfo = show
	}
}

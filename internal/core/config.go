package core

// RuntimeConfig contains the terminal settings a front end passes to the
// plotter: the drawing area and the animation rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation frames per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// WithSize returns a copy of c sized to the given terminal, keeping at least
// a minimal drawing area.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	c.ScreenW = Max(w, 20)
	c.ScreenH = Max(h, 10)
	return c
}

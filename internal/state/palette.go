package state

// Palette is the session-scoped drawing context: background and brush
// colors plus the dark-mode flag. It is passed explicitly to whoever
// needs it; there is no process-wide mutable singleton.
type Palette struct {
	DarkMode   bool
	Background RGB
	Brush      RGB
}

// NewPalette returns the light defaults: white board, black brush.
func NewPalette() *Palette {
	return &Palette{Background: White, Brush: Black}
}

// SetDarkMode switches the background between white and black and the
// brush to the opposite, matching the mode.
func (p *Palette) SetDarkMode(on bool) {
	p.DarkMode = on
	if on {
		p.Background = Black
		p.Brush = White
	} else {
		p.Background = White
		p.Brush = Black
	}
}

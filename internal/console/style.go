package console

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/config"
)

// paint formats its arguments, wrapped in colour escapes when enabled
type paint func(a ...interface{}) string

// Style decides how cards and messages are drawn
type Style struct {
	Unicode   bool
	Color     bool
	TrueColor bool

	theme map[string]colorful.Color
}

// NewStyle resolves the display settings against the terminal on stdout
func NewStyle(d config.Display, theme config.Theme) (*Style, error) {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))

	s := &Style{
		Unicode:   resolveMode(d.Unicode, isTerm),
		Color:     resolveMode(d.Color, isTerm && !colorize.NoColor),
		TrueColor: d.TrueColor,
		theme:     make(map[string]colorful.Color),
	}

	roles := map[string]string{
		"red":    theme.RedSuit,
		"hidden": theme.Hidden,
		"hit":    theme.Hit,
		"stand":  theme.Stand,
		"score":  theme.Score,
	}
	for role, hex := range roles {
		if hex == "" {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme colour for %s: %w", role, err)
		}
		s.theme[role] = c
	}

	return s, nil
}

// Plain returns a style without colour or unicode
func Plain() *Style {
	return &Style{theme: map[string]colorful.Color{}}
}

func resolveMode(mode string, auto bool) bool {
	switch mode {
	case config.ModeAlways:
		return true
	case config.ModeNever:
		return false
	default:
		return auto
	}
}

// painter returns the paint function for a role, falling back to the given
// 16-colour attributes when truecolor is off or the role has no theme colour
func (s *Style) painter(role string, attrs ...colorize.Attribute) paint {
	if !s.Color {
		return fmt.Sprint
	}
	if s.TrueColor {
		if c, ok := s.theme[role]; ok {
			return trueColor(c, attrs...)
		}
	}
	c := colorize.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

// trueColor emits a 24-bit foreground escape; bold is the only attribute kept
func trueColor(c colorful.Color, attrs ...colorize.Attribute) paint {
	r, g, b := c.RGB255()
	prefix := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	for _, a := range attrs {
		if a == colorize.Bold {
			prefix = "\x1b[1m" + prefix
		}
	}
	return func(a ...interface{}) string {
		return prefix + fmt.Sprint(a...) + "\x1b[0m"
	}
}

// TerminalWidth returns the width of stdout, or fallback when it is not a terminal
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

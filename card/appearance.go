package card

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/simukka/voidpage/motion"
	"github.com/simukka/voidpage/rain"
)

// StyleProp is one inline style property, named as on CSSStyleDeclaration.
type StyleProp struct {
	Name  string
	Value string
}

// Appearance is the resolved styling and behavior of one card.
type Appearance struct {
	Border      string
	HoverBorder string
	HoverGlow   string // CSS box-shadow while hovered
	Classes     []string
	Badge       string
	FullWidth   bool

	Motion motion.Config
	Rain   *rain.Config // Backdrop rain, nil for none
	// RainStyle stretches the rain canvas over the card so its layout size,
	// which sets the backing store, is the card's.
	RainStyle []StyleProp
	Reveal Reveal
}

// AppearanceFor resolves the appearance of l.
func AppearanceFor(l Link) Appearance {
	a := Appearance{
		Border:      l.AccentColor,
		HoverBorder: Theme.Cyan,
		Classes:     []string{"link-card", "link-card--" + l.Variant.String()},
		Motion:      motion.DefaultConfig(),
		Reveal:      DefaultReveal(l.Delay),
	}
	if a.Border == "" {
		a.Border = Theme.DefaultBorder
	}
	if l.Priority {
		a.HoverBorder = Theme.Gold
		a.Classes = append(a.Classes, "heartbeat")
		a.Badge = Theme.PriorityBadge
		a.Motion = motion.PriorityConfig()
	}
	a.HoverGlow = fmt.Sprintf("0 0 %dpx %s", Theme.GlowBlur, RGBA(a.HoverBorder, Theme.GlowAlpha))

	if l.Variant == Matrix {
		cfg := rain.DefaultConfig()
		cfg.Color = Theme.Rain
		a.Rain = &cfg
		a.RainStyle = rainStyle()
		a.FullWidth = true
	}
	return a
}

func rainStyle() []StyleProp {
	return []StyleProp{
		{"position", "absolute"},
		{"inset", "0"},
		{"width", "100%"},
		{"height", "100%"},
		{"opacity", strconv.FormatFloat(Theme.RainOpacity, 'f', -1, 64)},
		{"pointerEvents", "none"},
	}
}

// RGBA formats a hex color with alpha as a CSS rgba() value. Invalid hex
// colors render as black.
func RGBA(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{}
	}
	r, g, b := c.RGB255()
	return "rgba(" + strconv.Itoa(int(r)) + ", " + strconv.Itoa(int(g)) + ", " +
		strconv.Itoa(int(b)) + ", " + strconv.FormatFloat(alpha, 'f', -1, 64) + ")"
}

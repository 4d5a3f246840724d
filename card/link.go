package card

import (
	"strings"
	"time"
)

// Variant selects the card layout.
type Variant int

const (
	Classic Variant = iota
	Matrix
	Instagram
	TikTok
)

func (v Variant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Matrix:
		return "matrix"
	case Instagram:
		return "instagram"
	case TikTok:
		return "tiktok"
	default:
		return "unknown"
	}
}

// ParseVariant maps a variant name to a Variant. Unknown names are Classic.
func ParseVariant(name string) Variant {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "matrix":
		return Matrix
	case "instagram":
		return Instagram
	case "tiktok":
		return TikTok
	default:
		return Classic
	}
}

// Link is one entry of the links page. It is static configuration and is
// not validated.
type Link struct {
	Title       string
	Subtitle    string
	URL         string
	Image       string
	AccentColor string // Resting border color, Theme.DefaultBorder when empty
	Variant     Variant
	Priority    bool
	Delay       time.Duration // Reveal delay
}

// DefaultLinks is the page's link list.
var DefaultLinks = []Link{
	{
		Title:    "PROTOCOLO DARK",
		Subtitle: "protocolodark.vercel.app",
		URL:      "https://protocolodark.vercel.app/",
		Variant:  Matrix,
		Priority: true,
		Delay:    600 * time.Millisecond,
	},
	{
		Title:       "INSTAGRAM",
		Subtitle:    "@lincojoffre",
		URL:         "https://www.instagram.com/lincojoffre/",
		AccentColor: "#E1306C",
		Variant:     Instagram,
		Delay:       800 * time.Millisecond,
	},
	{
		Title:       "TIKTOK",
		Subtitle:    "@.omeentor",
		URL:         "https://www.tiktok.com/@.omeentor",
		AccentColor: "#25F4EE",
		Variant:     TikTok,
		Delay:       time.Second,
	},
}

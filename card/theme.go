package card

// Theme holds the page palette and card styling.
var Theme = struct {
	// Page colors
	Void   string
	Carbon string

	// Accents
	Cyan  string
	Gold  string
	Alert string
	Rain  string

	// Card borders
	DefaultBorder string
	GlowAlpha     float64
	GlowBlur      int

	// Badge
	PriorityBadge string

	// Fonts
	RainFont string

	// Rain backdrop
	RainOpacity float64
}{
	Void:   "#050505",
	Carbon: "#0A0A0A",

	Cyan:  "#00AEEF",
	Gold:  "#FFD700",
	Alert: "#EF4444",
	Rain:  "#00FF41",

	DefaultBorder: "#333333",
	GlowAlpha:     0.3,
	GlowBlur:      30,

	PriorityBadge: "PRIORIDADE",

	RainFont: "monospace",

	RainOpacity: 0.8,
}

package styles

// NewClinicTheme creates the default theme: calm teal on charcoal,
// easy on the eyes during a long shift.
func NewClinicTheme() *Theme {
	return &Theme{
		Name:   "clinic",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#1ABC9C"), // Teal
		Secondary: ParseHex("#48C9B0"), // Lighter teal
		Accent:    ParseHex("#76D7C4"), // Mint

		// Background colors
		BgBase:      ParseHex("#1C2833"), // Charcoal
		BgSubtle:    ParseHex("#273746"), // Subtle contrast
		BgHighlight: ParseHex("#2E4053"), // Highlighted rows

		// Foreground colors
		FgBase:     ParseHex("#ECF0F1"), // Near white
		FgMuted:    ParseHex("#95A5A6"), // Muted text
		FgSubtle:   ParseHex("#717D7E"), // Subtle text
		FgSelected: ParseHex("#FFFFFF"), // Selected text
		FgInverted: ParseHex("#1C2833"), // For light backgrounds

		// Border colors
		Border:      ParseHex("#34495E"),
		BorderFocus: ParseHex("#1ABC9C"),

		// Semantic colors
		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewInkTheme creates a high-contrast monochrome theme for bright
// exam-room displays.
func NewInkTheme() *Theme {
	return &Theme{
		Name:   "ink",
		IsDark: false,

		Primary:   ParseHex("#1F2937"),
		Secondary: ParseHex("#374151"),
		Accent:    ParseHex("#111827"),

		BgBase:      ParseHex("#FFFFFF"),
		BgSubtle:    ParseHex("#F3F4F6"),
		BgHighlight: ParseHex("#E5E7EB"),

		FgBase:     ParseHex("#111827"),
		FgMuted:    ParseHex("#6B7280"),
		FgSubtle:   ParseHex("#9CA3AF"),
		FgSelected: ParseHex("#000000"),
		FgInverted: ParseHex("#FFFFFF"),

		Border:      ParseHex("#D1D5DB"),
		BorderFocus: ParseHex("#1F2937"),

		Success: ParseHex("#059669"),
		Error:   ParseHex("#DC2626"),
		Warning: ParseHex("#D97706"),
		Info:    ParseHex("#2563EB"),
	}
}

package styles

const (
	// General icons
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"
	LoadingIcon string = "⟳"
	SearchIcon  string = "🔍"

	// Form status icons
	DraftIcon      string = "◌"
	InProgressIcon string = "◐"
	CompletedIcon  string = "●"
	WithdrawnIcon  string = "⊘"

	// List icons
	SelectIcon   string = "▶"
	SentinelIcon string = "···"
)

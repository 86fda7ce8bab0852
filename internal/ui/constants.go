package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMoved    = "✓"
	IconError    = "❌"
)

// Text fragments
const (
	MovedSeparator  = " → "
	DashPlaceholder = "—"
)

// Layout sizing
const (
	SettingsDialogWidth  float32 = 540
	SettingsDialogHeight float32 = 460
)

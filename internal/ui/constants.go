package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 320
)

package constants

import "time"

// Editor identity
const (
	// EditorName is shown in the welcome banner and diagnostics
	EditorName = "termedit"

	// Version is the editor release string
	Version = "0.0.1"
)

// Buffer Constants
const (
	// DefaultTabStop is the render column interval a tab advances to
	DefaultTabStop = 8

	// MaxTabStop caps the configurable tab stop
	MaxTabStop = 32
)

// Session Constants
const (
	// QuitTimes is the number of extra Ctrl-Q presses required to quit with unsaved changes
	QuitTimes = 3

	// StatusMessageTimeout is how long a status message stays on the message line
	StatusMessageTimeout = 5 * time.Second

	// StatusFilenameWidth is the maximum number of filename bytes shown in the status line
	StatusFilenameWidth = 20

	// ReservedScreenRows is the number of rows taken by the status and message lines
	ReservedScreenRows = 2
)

// Terminal Input Timing
const (
	// ReadPollTimeout bounds each wait for the first byte of a key
	ReadPollTimeout = 100 * time.Millisecond

	// EscapeTimeout bounds each lookahead read after ESC; expiry yields a bare ESC key
	EscapeTimeout = 100 * time.Millisecond

	// CursorReportTimeout bounds each byte of the cursor position report during the size fallback
	CursorReportTimeout = 100 * time.Millisecond

	// CursorReportMaxLen is the longest cursor position report accepted
	CursorReportMaxLen = 32
)

// UI Text
const (
	// HelpMessage is the initial status message
	HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

	// NoNamePlaceholder is shown in the status line when no filename is set
	NoNamePlaceholder = "[No Name]"

	// ModifiedIndicator is shown in the status line while the buffer is dirty
	ModifiedIndicator = "(modified)"

	// SaveAsPrompt is the prompt format for choosing a filename
	SaveAsPrompt = "Save as: %s (ESC to cancel)"

	// SearchPrompt is the prompt format for incremental search
	SearchPrompt = "Search: %s (Use ESC/Arrows/Enter)"
)

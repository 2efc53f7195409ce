// Package core provides the foundational types shared by pkgclip packages.
//
// This package contains:
//   - Name modes and copy actions: Mode, Action
//   - The error taxonomy: ErrInvalidManifest, ErrFileNotFound, ParseError, etc.
//   - Events emitted while a copy runs: Event, EventKind, EventHandler
package core

// Mode selects which form of the package name the resolver returns.
type Mode string

const (
	ModeFull  Mode = "full"
	ModeShort Mode = "short"
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	return string(m)
}

// Action identifies what gets copied for a single invocation.
type Action string

const (
	ActionNone       Action = ""
	ActionShortname  Action = "shortname"
	ActionNpmInstall Action = "npm-install"
	ActionPURL       Action = "purl"

	// ActionShow prints the whole manifest instead of copying a name.
	ActionShow Action = "show"
)

// String returns the string representation of the Action.
func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}
	return string(a)
}

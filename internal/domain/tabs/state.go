// Package tabs tracks which occupancy sections of the booking form are
// enabled and which one is currently displayed.
package tabs

import "github.com/pgstay/booking/internal/domain/entity"

// Tab identifies the active occupancy section.
type Tab string

const (
	TabNone      Tab = ""
	TabPermanent Tab = "permanent"
	TabTemporary Tab = "temporary"
)

// String returns the string representation of the tab.
func (t Tab) String() string {
	return string(t)
}

// Section returns the occupancy section this tab displays. Only meaningful
// for TabPermanent and TabTemporary.
func (t Tab) Section() entity.SectionKind {
	return entity.SectionKind(t)
}

// TabFor returns the tab that displays the given section.
func TabFor(kind entity.SectionKind) Tab {
	return Tab(kind)
}

// State holds the section checkboxes and the active tab.
//
// Invariant: Active is never a tab whose section is disabled. When the
// active section is disabled, Active falls back to the other enabled tab,
// or to TabNone when neither is enabled.
type State struct {
	PermanentEnabled bool `json:"permanent_enabled"`
	TemporaryEnabled bool `json:"temporary_enabled"`
	Active           Tab  `json:"active_tab"`
}

// Enabled reports whether the given section's checkbox is on.
func (s State) Enabled(kind entity.SectionKind) bool {
	switch kind {
	case entity.SectionPermanent:
		return s.PermanentEnabled
	case entity.SectionTemporary:
		return s.TemporaryEnabled
	}
	return false
}

// SetEnabled toggles a section's checkbox and applies the fallback rules.
// It returns true when the caller must clear that section's fields, which is
// the case on every disable.
func (s *State) SetEnabled(kind entity.SectionKind, enabled bool) bool {
	switch kind {
	case entity.SectionPermanent:
		s.PermanentEnabled = enabled
	case entity.SectionTemporary:
		s.TemporaryEnabled = enabled
	default:
		return false
	}

	tab := TabFor(kind)
	if enabled {
		if s.Active == TabNone {
			s.Active = tab
		}
		return false
	}

	if s.Active == tab {
		s.Active = s.fallback(kind)
	}
	return true
}

// Activate switches the displayed tab. Activating a disabled tab is refused
// and leaves the state unchanged.
func (s *State) Activate(tab Tab) bool {
	if tab == TabNone || !s.Enabled(tab.Section()) {
		return false
	}
	s.Active = tab
	return true
}

// Valid reports whether the invariant holds.
func (s State) Valid() bool {
	if s.Active == TabNone {
		return true
	}
	return s.Enabled(s.Active.Section())
}

func (s State) fallback(disabled entity.SectionKind) Tab {
	switch disabled {
	case entity.SectionPermanent:
		if s.TemporaryEnabled {
			return TabTemporary
		}
	case entity.SectionTemporary:
		if s.PermanentEnabled {
			return TabPermanent
		}
	}
	return TabNone
}

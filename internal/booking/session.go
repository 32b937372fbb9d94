package booking

import (
	"errors"
	"strings"
	"sync"

	"github.com/pgstay/booking/internal/domain/entity"
	"github.com/pgstay/booking/internal/domain/tabs"
)

var (
	// ErrUnknownSection is returned for a section kind that is neither
	// permanent nor temporary.
	ErrUnknownSection = errors.New("unknown occupancy section")

	// ErrSectionDisabled is returned when a selection targets a section
	// whose checkbox is off.
	ErrSectionDisabled = errors.New("occupancy section is not enabled")

	// ErrBedSheetPending is returned when a bed is selected while the bed
	// sheet for the section's property has not arrived yet. Bed selection
	// is sequenced strictly after the sheet fetch completes.
	ErrBedSheetPending = errors.New("bed sheet not loaded for selected property")

	// ErrStaleBedSheet is returned when a bed sheet arrives for a property
	// selection that has since been superseded.
	ErrStaleBedSheet = errors.New("bed sheet response superseded by a newer property selection")

	// ErrTabDisabled is returned when a disabled tab is activated.
	ErrTabDisabled = errors.New("tab is not enabled")
)

// dependent fields cleared on every property re-selection, before the new
// property's bed sheet is fetched. Start/end dates, fees and comments are
// user-entered and survive a property change.
var propertyDependentFields = []string{
	entity.FieldBedNo,
	entity.FieldRoomNo,
	entity.FieldRoomACNonAC,
	entity.FieldMonthlyRent,
	entity.FieldDepositAmount,
	entity.FieldRevisionDate,
	entity.FieldRevisionAmount,
	entity.FieldRentAmount,
}

// sheetState tracks the bed sheet loaded for a section's current property
// selection. The token increments on every re-selection; a sheet delivered
// under an older token is discarded.
type sheetState struct {
	token uint64
	rows  []entity.BedRow
	ready bool
}

// Session is one form-filling session: the single owned state object behind
// the booking form. All reads and writes go through its methods; the mutex
// serializes them so there is never more than one logical writer.
type Session struct {
	mu     sync.Mutex
	id     string
	values map[string]string
	tabs   tabs.State
	sheets map[entity.SectionKind]*sheetState
}

// Snapshot is a point-in-time copy of a session's derived state.
type Snapshot struct {
	ID               string            `json:"id"`
	Values           map[string]string `json:"values"`
	Tabs             tabs.State        `json:"tabs"`
	BedSelectorReady map[string]bool   `json:"bed_selector_ready"`
}

// NewSession creates an empty form session.
func NewSession(id string) *Session {
	return &Session{
		id:     id,
		values: make(map[string]string),
		sheets: map[entity.SectionKind]*sheetState{
			entity.SectionPermanent: {},
			entity.SectionTemporary: {},
		},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetField stores a raw form value. Changing a section's start date, end
// date or monthly rent recomputes that section's rent amount immediately.
func (s *Session) SetField(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	for _, kind := range entity.Sections {
		prefix := kind.Prefix()
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		switch strings.TrimPrefix(key, prefix) {
		case entity.FieldRentStartDate, entity.FieldRentEndDate, entity.FieldMonthlyRent:
			s.recomputeRent(kind)
		}
		return
	}
}

// EnableSection toggles a section checkbox. Disabling a section clears
// every one of its fields and forgets its bed sheet.
func (s *Session) EnableSection(kind entity.SectionKind, enabled bool) error {
	if !kind.IsValid() {
		return ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cleared := s.tabs.SetEnabled(kind, enabled); cleared {
		s.clearSection(kind)
	}
	return nil
}

// ActivateTab switches the displayed tab and recomputes the newly active
// section's rent, since the occupancy kind drives the calculation.
func (s *Session) ActivateTab(tab tabs.Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tabs.Activate(tab) {
		return ErrTabDisabled
	}
	s.recomputeRent(tab.Section())
	return nil
}

// SelectProperty records a property choice for a section and clears every
// field derived from the previous property, so stale cross-property data
// never leaks into the form. It returns the fetch token the caller must
// present to ApplyBedSheet once the new property's sheet has been loaded,
// together with the sheet ID to load.
func (s *Session) SelectProperty(kind entity.SectionKind, compositeValue string) (uint64, string, error) {
	if !kind.IsValid() {
		return 0, "", ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tabs.Enabled(kind) {
		return 0, "", ErrSectionDisabled
	}

	prefix := kind.Prefix()
	s.values[prefix+entity.FieldPropertyCode] = compositeValue
	for _, field := range propertyDependentFields {
		s.values[prefix+field] = ""
	}

	sheet := s.sheets[kind]
	sheet.token++
	sheet.rows = nil
	sheet.ready = false

	return sheet.token, entity.SheetIDFromValue(compositeValue), nil
}

// ApplyBedSheet delivers the bed sheet fetched for a property selection.
// A sheet carrying a token other than the section's current one belongs to
// a superseded selection and is discarded.
func (s *Session) ApplyBedSheet(kind entity.SectionKind, token uint64, rows []entity.BedRow) error {
	if !kind.IsValid() {
		return ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := s.sheets[kind]
	if token != sheet.token {
		return ErrStaleBedSheet
	}
	sheet.rows = rows
	sheet.ready = true
	return nil
}

// SelectBed resolves a bed number against the section's loaded bed sheet
// and fills the dependent fields. The whole resolution re-runs on every
// selection; each selection fully supersedes the previous derived values.
func (s *Session) SelectBed(kind entity.SectionKind, bedNo string) error {
	if !kind.IsValid() {
		return ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tabs.Enabled(kind) {
		return ErrSectionDisabled
	}
	sheet := s.sheets[kind]
	if !sheet.ready {
		return ErrBedSheetPending
	}

	resolved := ResolveBed(sheet.rows, bedNo)
	prefix := kind.Prefix()
	s.values[prefix+entity.FieldBedNo] = resolved.BedNo
	s.values[prefix+entity.FieldRoomACNonAC] = resolved.ACRoom
	s.values[prefix+entity.FieldMonthlyRent] = resolved.MonthlyRent
	s.values[prefix+entity.FieldDepositAmount] = resolved.DepositAmount
	s.values[prefix+entity.FieldRevisionDate] = resolved.RevisionDate
	s.values[prefix+entity.FieldRevisionAmount] = resolved.RevisionAmount
	s.values[prefix+entity.FieldRoomNo] = resolved.RoomNo

	s.recomputeRent(kind)
	return nil
}

// Assemble produces the booking record for the session's current state.
func (s *Session) Assemble() entity.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Assemble(s.values, s.tabs)
}

// Snapshot returns a copy of the current form state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make(map[string]string, len(s.values))
	for key, value := range s.values {
		values[key] = value
	}
	return Snapshot{
		ID:     s.id,
		Values: values,
		Tabs:   s.tabs,
		BedSelectorReady: map[string]bool{
			string(entity.SectionPermanent): s.sheets[entity.SectionPermanent].ready,
			string(entity.SectionTemporary): s.sheets[entity.SectionTemporary].ready,
		},
	}
}

// recomputeRent recalculates a section's rent amount from its current
// inputs. Callers must hold the session mutex.
func (s *Session) recomputeRent(kind entity.SectionKind) {
	prefix := kind.Prefix()
	s.values[prefix+entity.FieldRentAmount] = ProRatedRent(
		kind,
		s.values[prefix+entity.FieldRentStartDate],
		s.values[prefix+entity.FieldRentEndDate],
		s.values[prefix+entity.FieldMonthlyRent],
	)
}

// clearSection wipes a section's fields and sheet state. Bumping the token
// invalidates any sheet fetch still in flight. Callers must hold the mutex.
func (s *Session) clearSection(kind entity.SectionKind) {
	prefix := kind.Prefix()
	for _, field := range entity.SectionFieldKeys {
		delete(s.values, prefix+field)
	}
	sheet := s.sheets[kind]
	sheet.token++
	sheet.rows = nil
	sheet.ready = false
}

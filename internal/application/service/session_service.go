package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/pgstay/booking/internal/application/port"
	"github.com/pgstay/booking/internal/booking"
	"github.com/pgstay/booking/internal/domain/entity"
	"github.com/pgstay/booking/internal/domain/tabs"
)

// ErrSessionNotFound is returned for an unknown or expired session ID.
var ErrSessionNotFound = errors.New("form session not found")

// ErrUnknownMutation is returned for a mutation op the service does not know.
var ErrUnknownMutation = errors.New("unknown mutation op")

// Mutation ops accepted by Apply.
const (
	OpSetField       = "set_field"
	OpEnableSection  = "enable_section"
	OpActivateTab    = "activate_tab"
	OpSelectProperty = "select_property"
	OpSelectBed      = "select_bed"
)

// Mutation is one form change applied to a session.
type Mutation struct {
	Op      string `json:"op" binding:"required"`
	Section string `json:"section,omitempty"`
	Key     string `json:"key,omitempty"`
	Value   string `json:"value,omitempty"`
	Enabled bool   `json:"enabled"`
	Tab     string `json:"tab,omitempty"`
}

// SessionService manages form sessions
type SessionService interface {
	Create(ctx context.Context) booking.Snapshot
	Get(ctx context.Context, id string) (booking.Snapshot, error)
	Apply(ctx context.Context, id string, m Mutation) (booking.Snapshot, error)
}

type sessionServiceImpl struct {
	mu       sync.RWMutex
	sessions map[string]*booking.Session
	source   port.ReferenceSource
	logger   Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(source port.ReferenceSource, logger Logger) SessionService {
	return &sessionServiceImpl{
		sessions: make(map[string]*booking.Session),
		source:   source,
		logger:   logger,
	}
}

// Create starts a new form session.
func (s *sessionServiceImpl) Create(ctx context.Context) booking.Snapshot {
	sess := booking.NewSession(uuid.NewString())

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.logger.Info("Form session created", "session_id", sess.ID())
	return sess.Snapshot()
}

// Get returns the session's current snapshot.
func (s *sessionServiceImpl) Get(ctx context.Context, id string) (booking.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return booking.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Apply executes one mutation against a session and returns the resulting
// snapshot. Selecting a property also loads that property's bed sheet; a
// load that resolves after the property has been re-selected again is
// discarded by the session's fetch token and the snapshot keeps reporting
// the bed selector as unavailable.
func (s *sessionServiceImpl) Apply(ctx context.Context, id string, m Mutation) (booking.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return booking.Snapshot{}, err
	}

	switch m.Op {
	case OpSetField:
		sess.SetField(m.Key, m.Value)

	case OpEnableSection:
		if err := sess.EnableSection(entity.SectionKind(m.Section), m.Enabled); err != nil {
			return booking.Snapshot{}, err
		}

	case OpActivateTab:
		if err := sess.ActivateTab(tabs.Tab(m.Tab)); err != nil {
			return booking.Snapshot{}, err
		}

	case OpSelectProperty:
		if err := s.selectProperty(ctx, sess, entity.SectionKind(m.Section), m.Value); err != nil {
			return booking.Snapshot{}, err
		}

	case OpSelectBed:
		if err := sess.SelectBed(entity.SectionKind(m.Section), m.Value); err != nil {
			return booking.Snapshot{}, err
		}

	default:
		return booking.Snapshot{}, ErrUnknownMutation
	}

	return sess.Snapshot(), nil
}

func (s *sessionServiceImpl) selectProperty(ctx context.Context, sess *booking.Session, kind entity.SectionKind, value string) error {
	token, sheetID, err := sess.SelectProperty(kind, value)
	if err != nil {
		return err
	}

	rows, err := s.source.BedSheet(ctx, sheetID)
	if err != nil {
		// A failed fetch is an external concern, not a form error: the
		// selector offers no beds until the property is re-selected.
		s.logger.Error("Failed to load bed sheet for property selection",
			"error", err, "session_id", sess.ID(), "sheet_id", sheetID)
		rows = nil
	}

	if err := sess.ApplyBedSheet(kind, token, rows); err != nil {
		if errors.Is(err, booking.ErrStaleBedSheet) {
			s.logger.Info("Discarded superseded bed sheet response",
				"session_id", sess.ID(), "sheet_id", sheetID)
			return nil
		}
		return err
	}
	return nil
}

func (s *sessionServiceImpl) lookup(id string) (*booking.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

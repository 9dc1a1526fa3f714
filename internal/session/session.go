package session

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/domain/profile"
	"github.com/wate11/HyMatch-project/internal/i18n"
	"github.com/wate11/HyMatch-project/internal/ledger"
	"github.com/wate11/HyMatch-project/internal/matchfilter"
	"github.com/wate11/HyMatch-project/internal/swipe"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrExhausted means the undecided pool has no job left under the
	// current filters. A normal display state, not a failure.
	ErrExhausted = errors.New("no undecided jobs left")
)

// ProfileValidationError blocks a profile save when required fields are
// missing. Nothing is saved on failure.
type ProfileValidationError struct {
	Missing []string
}

func (e *ProfileValidationError) Error() string {
	return fmt.Sprintf("profile incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// Route names one of the app's navigation destinations: five tabs plus
// the filter and profile-edit modals.
type Route string

const (
	RouteJobs        Route = "jobs"
	RouteRefused     Route = "refused"
	RouteChosen      Route = "chosen"
	RouteProfile     Route = "profile"
	RouteContact     Route = "contact"
	RouteFilter      Route = "filter"
	RouteProfileEdit Route = "profile_edit"
)

func ValidRoute(r Route) bool {
	switch r {
	case RouteJobs, RouteRefused, RouteChosen, RouteProfile, RouteContact, RouteFilter, RouteProfileEdit:
		return true
	}
	return false
}

// WindowSize is how many undecided jobs the swipe deck shows at once.
const WindowSize = 3

// WindowCard is one entry of the visible window. Cards beneath the top
// one carry reduced scale and a vertical offset as depth cues.
type WindowCard struct {
	Job     job.Job
	Top     bool
	Scale   float64
	OffsetY float64
}

// PointerEventType is a discrete gesture input.
type PointerEventType string

const (
	PointerDown PointerEventType = "down"
	PointerMove PointerEventType = "move"
	PointerUp   PointerEventType = "up"
)

type PointerEvent struct {
	Type PointerEventType
	X    float64
	Y    float64
}

// PointerResult reports the gesture surface after one event, plus the
// application created when the event committed a swipe.
type PointerResult struct {
	State     swipe.State
	Transform swipe.Transform
	Committed *application.Application
}

// EventSink receives session lifecycle events. The websocket notifier
// implements it; tests plug their own.
type EventSink interface {
	DecisionRecorded(sessionID uuid.UUID, app application.Application, j job.Job)
	PoolExhausted(sessionID uuid.UUID)
}

// Session owns every mutable state container for one user session: the
// application ledger, filter settings, swipe cursor, gesture machine,
// profile store and language choice. The catalog is borrowed read-only.
// Created at session start, torn down on session end.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu      sync.Mutex
	catalog []job.Job
	ledger  *ledger.Ledger

	filters       matchfilter.Settings
	sortBy        matchfilter.SortKey
	filterVersion uint64

	// undecided is recomputed from the current ledger whenever filters
	// change; the cursor counts how many of its entries were consumed and
	// never moves backwards.
	undecided []job.Job
	cursor    int
	machine   *swipe.Machine
	// pendingCommit carries the application recorded by a gesture callback
	// back to the pointer-event caller.
	pendingCommit *application.Application
	exhaustedSent bool

	prof              *profile.UserProfile
	reminderDismissed bool
	route             Route

	language i18n.Language

	logger *log.Logger
	sink   EventSink
}

func New(id uuid.UUID, catalog []job.Job, logger *log.Logger, sink EventSink) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		catalog:   catalog,
		ledger:    ledger.New(),
		filters:   matchfilter.DefaultSettings(),
		sortBy:    matchfilter.SortDate,
		route:     RouteJobs,
		language:  i18n.DefaultLanguage,
		logger:    logger,
		sink:      sink,
	}
	s.mu.Lock()
	s.recomputeLocked()
	s.mu.Unlock()
	return s
}

// recomputeLocked rebuilds the undecided pool from the current ledger and
// filters and resets the cursor. Decided jobs stay excluded no matter how
// the filters change.
func (s *Session) recomputeLocked() {
	remaining := make([]job.Job, 0, len(s.catalog))
	for _, j := range s.catalog {
		if s.ledger.HasDecision(j.ID) {
			continue
		}
		remaining = append(remaining, j)
	}
	s.undecided = matchfilter.Apply(remaining, s.filters, s.sortBy)
	s.cursor = 0
	s.exhaustedSent = false
	s.mountMachineLocked()
}

// mountMachineLocked binds a fresh gesture machine to the new top card.
// The previous machine is discarded, so a committed card can never accept
// another drag.
func (s *Session) mountMachineLocked() {
	if s.cursor >= len(s.undecided) {
		s.machine = nil
		if !s.exhaustedSent {
			s.exhaustedSent = true
			if s.logger != nil {
				s.logger.Printf("[Session] Pool exhausted | session=%s decided=%d", s.ID, s.ledger.Size())
			}
			if s.sink != nil {
				s.sink.PoolExhausted(s.ID)
			}
		}
		return
	}
	s.machine = swipe.NewMachine(
		swipe.DefaultCardWidth,
		func() { s.commitFromGesture(application.DecisionChosen) },
		func() { s.commitFromGesture(application.DecisionRefused) },
	)
}

func (s *Session) commitFromGesture(d application.Decision) {
	app, err := s.commitLocked(d)
	if err != nil {
		return
	}
	s.pendingCommit = &app
}

// commitLocked records the decision for the job at the cursor and advances
// the window. Callers hold s.mu.
func (s *Session) commitLocked(d application.Decision) (application.Application, error) {
	if s.cursor >= len(s.undecided) {
		return application.Application{}, ErrExhausted
	}

	j := s.undecided[s.cursor]
	app, created := s.ledger.Record(j.ID, d)
	s.cursor++
	s.mountMachineLocked()

	if s.logger != nil {
		s.logger.Printf("[Session] Decision | session=%s job=%s decision=%s new=%t", s.ID, j.ID, d, created)
	}
	if created && s.sink != nil {
		s.sink.DecisionRecorded(s.ID, app, j)
	}
	return app, nil
}

// Commit records a decision for the top card directly, the button path
// next to the drag gesture.
func (s *Session) Commit(d application.Decision) (application.Application, error) {
	if !application.ValidDecision(d) {
		return application.Application{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(d)
}

// HandlePointer feeds one discrete gesture event to the top card's
// machine. When a release crosses the threshold the commit happens here,
// synchronously, before the call returns.
func (s *Session) HandlePointer(ev PointerEvent) (PointerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.machine
	if m == nil {
		return PointerResult{}, ErrExhausted
	}

	s.pendingCommit = nil
	switch ev.Type {
	case PointerDown:
		m.PointerDown(ev.X, ev.Y)
	case PointerMove:
		m.PointerMove(ev.X, ev.Y)
	case PointerUp:
		m.PointerUp()
	default:
		return PointerResult{}, ErrInvalidInput
	}

	res := PointerResult{State: m.State(), Transform: m.Transform(), Committed: s.pendingCommit}
	s.pendingCommit = nil
	return res, nil
}

// GestureFrame advances the running card animation and reports the current
// visual state. Used by clients polling the spring-back or fly-off.
func (s *Session) GestureFrame(now time.Time) (swipe.State, swipe.Transform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine == nil {
		return swipe.StateIdle, swipe.Transform{Scale: 1}
	}
	st := s.machine.Advance(now)
	return st, s.machine.Transform()
}

// Window returns the next cards of the undecided pool, top first, with
// depth cues, and whether the pool is exhausted.
func (s *Session) Window() ([]WindowCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.cursor + WindowSize
	if end > len(s.undecided) {
		end = len(s.undecided)
	}

	cards := make([]WindowCard, 0, WindowSize)
	for i, j := range s.undecided[s.cursor:end] {
		cards = append(cards, WindowCard{
			Job:     j,
			Top:     i == 0,
			Scale:   1 - float64(i)*0.05,
			OffsetY: float64(i) * 10,
		})
	}
	return cards, len(cards) == 0
}

// Listing returns the whole filtered, sorted undecided pool.
func (s *Session) Listing() []job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]job.Job, len(s.undecided)-s.cursor)
	copy(out, s.undecided[s.cursor:])
	return out
}

// ChosenJobs returns accepted jobs in catalog order.
func (s *Session) ChosenJobs() []job.Job {
	return s.ledger.ChosenJobs(s.catalog)
}

// RefusedJobs returns rejected jobs in catalog order.
func (s *Session) RefusedJobs() []job.Job {
	return s.ledger.RefusedJobs(s.catalog)
}

// Ledger exposes the session's application ledger.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Filters returns the active settings and sort key.
func (s *Session) Filters() (matchfilter.Settings, matchfilter.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters, s.sortBy
}

// SetFilters replaces the filter settings and sort key, then recomputes
// the undecided pool from the current ledger with the cursor reset.
func (s *Session) SetFilters(settings matchfilter.Settings, sortBy matchfilter.SortKey) error {
	if !matchfilter.ValidSortKey(sortBy) {
		return ErrInvalidInput
	}
	if settings.WageMin > settings.WageMax {
		return ErrInvalidInput
	}
	for _, c := range settings.Categories {
		if !job.ValidCategory(c) {
			return ErrInvalidInput
		}
	}
	for _, l := range settings.LanguageLevels {
		if !job.ValidLanguageLevel(l) {
			return ErrInvalidInput
		}
	}
	for _, d := range settings.WorkDays {
		if !job.ValidWeekday(d) {
			return ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = settings
	s.sortBy = sortBy
	s.filterVersion++
	s.recomputeLocked()
	if s.logger != nil {
		s.logger.Printf("[Session] Filters updated | session=%s sort=%s pool=%d", s.ID, sortBy, len(s.undecided))
	}
	return nil
}

// Versions returns the (ledger, filter) version pair used as the derived
// view cache key. Any mutation of either invalidates cached listings.
func (s *Session) Versions() (uint64, uint64) {
	s.mu.Lock()
	fv := s.filterVersion
	s.mu.Unlock()
	return s.ledger.Version(), fv
}

// Profile returns the saved profile (nil until first save) and whether the
// incompleteness reminder should surface.
func (s *Session) Profile() (*profile.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prof, s.reminderVisibleLocked()
}

func (s *Session) reminderVisibleLocked() bool {
	if s.reminderDismissed {
		return false
	}
	return s.prof == nil || !s.prof.Complete()
}

// SaveProfile replaces the profile wholesale. A failed required-field
// check blocks the save and nothing is stored.
func (s *Session) SaveProfile(p profile.UserProfile) error {
	if missing := p.MissingFields(); len(missing) > 0 {
		return &ProfileValidationError{Missing: missing}
	}
	if p.Gender != "" && !profile.ValidGender(p.Gender) {
		return ErrInvalidInput
	}
	if p.LanguageLevel != "" && !job.ValidLanguageLevel(p.LanguageLevel) {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		if s.prof != nil {
			p.ID = s.prof.ID
		} else {
			p.ID = uuid.NewString()
		}
	}
	s.prof = &p
	if s.logger != nil {
		s.logger.Printf("[Session] Profile saved | session=%s complete=%t", s.ID, p.Complete())
	}
	return nil
}

// DismissReminder hides the incompleteness nudge for the current view
// only; it does not touch the completeness state.
func (s *Session) DismissReminder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminderDismissed = true
}

// Navigate switches the current named route. Moving to a new view undoes
// a reminder dismissal.
func (s *Session) Navigate(r Route) error {
	if !ValidRoute(r) {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if r != s.route {
		s.reminderDismissed = false
	}
	s.route = r
	return nil
}

// Route returns the current navigation destination.
func (s *Session) Route() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// Language returns the session's locale.
func (s *Session) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage switches the session's locale.
func (s *Session) SetLanguage(l i18n.Language) error {
	if !i18n.ValidLanguage(l) {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = l
	return nil
}

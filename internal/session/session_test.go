package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/domain/profile"
	"github.com/wate11/HyMatch-project/internal/matchfilter"
	"github.com/wate11/HyMatch-project/internal/swipe"
)

type mockSink struct {
	decisions []string
	exhausted int
}

func (m *mockSink) DecisionRecorded(_ uuid.UUID, app application.Application, _ job.Job) {
	m.decisions = append(m.decisions, app.JobID+":"+string(app.Decision))
}

func (m *mockSink) PoolExhausted(uuid.UUID) {
	m.exhausted++
}

func testCatalog() []job.Job {
	return []job.Job{
		{ID: "a", Title: "Kitchen Staff", Category: job.CategoryCooking, Salary: "¥1,000/hour", LanguageLevel: job.LevelN3, CommuteTime: "15 min", WorkDays: []job.Weekday{job.Mon, job.Fri}},
		{ID: "b", Title: "Delivery Rider", Category: job.CategoryDelivery, Salary: "¥2,000/hour", LanguageLevel: job.LevelN4, CommuteTime: "10 min", WorkDays: []job.Weekday{job.Sat, job.Sun}},
		{ID: "c", Title: "Warehouse Sorter", Category: job.CategoryWarehouse, Salary: "¥1,100/hour", LanguageLevel: job.LevelN5, CommuteTime: "25 min", WorkDays: []job.Weekday{job.Mon, job.Sat}},
		{ID: "d", Title: "Store Clerk", Category: job.CategoryRetail, Salary: "¥1,150/hour", LanguageLevel: job.LevelN2, CommuteTime: "5 min", WorkDays: []job.Weekday{job.Tue, job.Wed}},
	}
}

func newTestSession(sink EventSink) *Session {
	return New(uuid.New(), testCatalog(), nil, sink)
}

func TestSession_Commit_AdvancesWindow(t *testing.T) {
	sink := &mockSink{}
	s := newTestSession(sink)

	cards, exhausted := s.Window()
	if exhausted {
		t.Fatalf("fresh session must not be exhausted")
	}
	if len(cards) != WindowSize {
		t.Fatalf("expected %d cards, got %d", WindowSize, len(cards))
	}
	if cards[0].Job.ID != "a" || !cards[0].Top {
		t.Fatalf("expected a on top, got %+v", cards[0])
	}

	app, err := s.Commit(application.DecisionChosen)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.JobID != "a" || app.Decision != application.DecisionChosen {
		t.Fatalf("unexpected application: %+v", app)
	}

	cards, _ = s.Window()
	if cards[0].Job.ID != "b" {
		t.Fatalf("window must advance to b, got %s", cards[0].Job.ID)
	}

	chosen := s.ChosenJobs()
	if len(chosen) != 1 || chosen[0].ID != "a" {
		t.Fatalf("unexpected chosen view: %v", chosen)
	}
	if len(sink.decisions) != 1 || sink.decisions[0] != "a:chosen" {
		t.Fatalf("unexpected sink decisions: %v", sink.decisions)
	}
}

func TestSession_Commit_InvalidDecision(t *testing.T) {
	s := newTestSession(nil)
	if _, err := s.Commit(application.Decision("maybe")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSession_Exhaustion(t *testing.T) {
	sink := &mockSink{}
	s := New(uuid.New(), testCatalog()[:2], nil, sink)

	if _, err := s.Commit(application.DecisionChosen); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Commit(application.DecisionRefused); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cards, exhausted := s.Window()
	if len(cards) != 0 || !exhausted {
		t.Fatalf("expected empty exhausted window, got %d cards", len(cards))
	}
	if _, err := s.Commit(application.DecisionChosen); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if sink.exhausted != 1 {
		t.Fatalf("pool_exhausted must fire once, got %d", sink.exhausted)
	}
}

func TestSession_GestureCommit(t *testing.T) {
	s := newTestSession(nil)

	if _, err := s.HandlePointer(PointerEvent{Type: PointerDown, X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.HandlePointer(PointerEvent{Type: PointerMove, X: -150, Y: 0}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	res, err := s.HandlePointer(PointerEvent{Type: PointerUp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Committed == nil {
		t.Fatalf("release past the threshold must commit")
	}
	if res.Committed.JobID != "a" || res.Committed.Decision != application.DecisionRefused {
		t.Fatalf("unexpected commit: %+v", res.Committed)
	}

	refused := s.RefusedJobs()
	if len(refused) != 1 || refused[0].ID != "a" {
		t.Fatalf("unexpected refused view: %v", refused)
	}

	// The next top card owns a fresh machine and can be dragged.
	res, err = s.HandlePointer(PointerEvent{Type: PointerDown, X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Committed != nil {
		t.Fatalf("pointer down must not commit")
	}
}

func TestSession_GestureSmallDragNoCommit(t *testing.T) {
	s := newTestSession(nil)

	s.HandlePointer(PointerEvent{Type: PointerDown, X: 0, Y: 0})
	s.HandlePointer(PointerEvent{Type: PointerMove, X: 40, Y: 0})
	res, err := s.HandlePointer(PointerEvent{Type: PointerUp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Committed != nil {
		t.Fatalf("dx=40 must spring back without a commit")
	}
	if s.Ledger().Size() != 0 {
		t.Fatalf("ledger must stay empty")
	}
}

func TestSession_GestureDragAfterSpringBack(t *testing.T) {
	s := newTestSession(nil)

	s.HandlePointer(PointerEvent{Type: PointerDown, X: 0, Y: 0})
	s.HandlePointer(PointerEvent{Type: PointerMove, X: 40, Y: 0})
	res, err := s.HandlePointer(PointerEvent{Type: PointerUp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.State != swipe.StateReturning {
		t.Fatalf("expected returning, got %s", res.State)
	}

	// Let the spring-back run out without polling the animation endpoint;
	// the next drag on the pointer path must still be accepted.
	time.Sleep(300 * time.Millisecond)

	res, err = s.HandlePointer(PointerEvent{Type: PointerDown, X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.State != swipe.StateDragging {
		t.Fatalf("drag after the spring-back ended was dropped, state=%s", res.State)
	}

	s.HandlePointer(PointerEvent{Type: PointerMove, X: -150, Y: 0})
	res, err = s.HandlePointer(PointerEvent{Type: PointerUp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Committed == nil || res.Committed.JobID != "a" {
		t.Fatalf("second gesture must commit the top card, got %+v", res.Committed)
	}
}

func TestSession_GestureInvalidEvent(t *testing.T) {
	s := newTestSession(nil)
	if _, err := s.HandlePointer(PointerEvent{Type: "hover"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSession_SetFilters_ResetsCursorAndExcludesDecided(t *testing.T) {
	s := newTestSession(nil)

	// Decide the first two jobs.
	s.Commit(application.DecisionChosen)
	s.Commit(application.DecisionRefused)

	if err := s.SetFilters(matchfilter.DefaultSettings(), matchfilter.SortWage); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	listing := s.Listing()
	if len(listing) != 2 {
		t.Fatalf("expected 2 undecided jobs, got %d", len(listing))
	}
	for _, j := range listing {
		if j.ID == "a" || j.ID == "b" {
			t.Fatalf("decided job %s reappeared after a filter change", j.ID)
		}
	}
	// Wage sort puts d (¥1,150) before c (¥1,100).
	if listing[0].ID != "d" || listing[1].ID != "c" {
		t.Fatalf("expected [d c], got %v", listing)
	}

	cards, _ := s.Window()
	if cards[0].Job.ID != "d" {
		t.Fatalf("cursor must reset to the new pool head, got %s", cards[0].Job.ID)
	}
}

func TestSession_SetFilters_Validation(t *testing.T) {
	s := newTestSession(nil)

	if err := s.SetFilters(matchfilter.DefaultSettings(), matchfilter.SortKey("rating")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown sort key, got %v", err)
	}

	bad := matchfilter.DefaultSettings()
	bad.WageMin = 3000
	bad.WageMax = 1000
	if err := s.SetFilters(bad, matchfilter.SortDate); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted wage range, got %v", err)
	}

	bad = matchfilter.DefaultSettings()
	bad.Categories = []job.Category{"gardening"}
	if err := s.SetFilters(bad, matchfilter.SortDate); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown category, got %v", err)
	}
}

func TestSession_Versions(t *testing.T) {
	s := newTestSession(nil)

	lv, fv := s.Versions()
	if lv != 0 || fv != 0 {
		t.Fatalf("fresh session must start at (0, 0), got (%d, %d)", lv, fv)
	}

	s.Commit(application.DecisionChosen)
	lv, fv = s.Versions()
	if lv != 1 || fv != 0 {
		t.Fatalf("commit must bump the ledger version, got (%d, %d)", lv, fv)
	}

	s.SetFilters(matchfilter.DefaultSettings(), matchfilter.SortCommute)
	lv, fv = s.Versions()
	if lv != 1 || fv != 1 {
		t.Fatalf("filter change must bump the filter version, got (%d, %d)", lv, fv)
	}
}

func TestSession_SaveProfile_BlocksIncomplete(t *testing.T) {
	s := newTestSession(nil)

	err := s.SaveProfile(profile.UserProfile{FirstName: "Aziz"})
	var vErr *ProfileValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ProfileValidationError, got %v", err)
	}
	if len(vErr.Missing) != 3 {
		t.Fatalf("expected 3 missing fields, got %v", vErr.Missing)
	}

	// Nothing stored on failure.
	if p, _ := s.Profile(); p != nil {
		t.Fatalf("failed save must not store a profile")
	}
}

func TestSession_SaveProfile_ReminderLifecycle(t *testing.T) {
	s := newTestSession(nil)

	if _, reminder := s.Profile(); !reminder {
		t.Fatalf("reminder must show while the profile is incomplete")
	}

	s.DismissReminder()
	if _, reminder := s.Profile(); reminder {
		t.Fatalf("dismissal must hide the reminder")
	}

	// Dismissal only covers the current view.
	if err := s.Navigate(RouteChosen); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, reminder := s.Profile(); !reminder {
		t.Fatalf("navigating away must clear the dismissal")
	}

	err := s.SaveProfile(profile.UserProfile{
		FirstName: "Aziz", LastName: "Karimov",
		Email: "aziz@example.com", Phone: "080-1234-5678",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, reminder := s.Profile()
	if p == nil || !p.Complete() {
		t.Fatalf("expected a stored complete profile")
	}
	if reminder {
		t.Fatalf("reminder must hide once the profile is complete")
	}
}

func TestSession_Navigate(t *testing.T) {
	s := newTestSession(nil)
	if s.Route() != RouteJobs {
		t.Fatalf("sessions must start on the jobs tab, got %s", s.Route())
	}
	if err := s.Navigate(Route("settings")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown route, got %v", err)
	}
	if err := s.Navigate(RouteProfileEdit); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Route() != RouteProfileEdit {
		t.Fatalf("unexpected route %s", s.Route())
	}
}

func TestSession_Language(t *testing.T) {
	s := newTestSession(nil)
	if s.Language() != "ja" {
		t.Fatalf("sessions must start in Japanese, got %s", s.Language())
	}
	if err := s.SetLanguage("fr"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unsupported locale, got %v", err)
	}
	if err := s.SetLanguage("uz"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Language() != "uz" {
		t.Fatalf("unexpected locale %s", s.Language())
	}
}

func TestSession_WageSortedCommit(t *testing.T) {
	catalog := []job.Job{
		{ID: "jobA", Salary: "¥1,000/hour"},
		{ID: "jobB", Salary: "¥2,000/hour"},
	}
	s := New(uuid.New(), catalog, nil, nil)

	if err := s.SetFilters(matchfilter.DefaultSettings(), matchfilter.SortWage); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	listing := s.Listing()
	if listing[0].ID != "jobB" || listing[1].ID != "jobA" {
		t.Fatalf("expected [jobB jobA], got %v", listing)
	}

	app, err := s.Commit(application.DecisionChosen)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.JobID != "jobB" {
		t.Fatalf("commit must take the sorted pool head, got %s", app.JobID)
	}

	chosen := s.ChosenJobs()
	if len(chosen) != 1 || chosen[0].ID != "jobB" {
		t.Fatalf("unexpected chosen view: %v", chosen)
	}
	listing = s.Listing()
	if len(listing) != 1 || listing[0].ID != "jobA" {
		t.Fatalf("undecided pool must shrink to jobA, got %v", listing)
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(testCatalog(), nil, nil)

	s := m.Create()
	if m.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", m.Count())
	}

	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get returned (%v, %v)", got, err)
	}

	m.Delete(s.ID)
	if _, err := m.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Idempotent.
	m.Delete(s.ID)
	if m.Count() != 0 {
		t.Fatalf("expected 0 sessions, got %d", m.Count())
	}
}

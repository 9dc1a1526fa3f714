package ledger

import (
	"testing"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/domain/job"
)

func TestLedger_Record_Idempotent(t *testing.T) {
	l := New()

	first, created := l.Record("job-001", application.DecisionChosen)
	if !created {
		t.Fatalf("expected first record to be created")
	}
	if l.Version() != 1 {
		t.Fatalf("expected version 1, got %d", l.Version())
	}

	// A second decision for the same job must not overwrite the first.
	second, created := l.Record("job-001", application.DecisionRefused)
	if created {
		t.Fatalf("duplicate record must be a no-op")
	}
	if second.ID != first.ID || second.Decision != application.DecisionChosen {
		t.Fatalf("duplicate record must return the original application")
	}
	if l.Version() != 1 {
		t.Fatalf("no-op must not bump the version, got %d", l.Version())
	}
	if l.Size() != 1 {
		t.Fatalf("expected 1 application, got %d", l.Size())
	}
}

func TestLedger_DecidedViews_CatalogOrder(t *testing.T) {
	catalog := []job.Job{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	l := New()

	// Decide out of catalog order.
	l.Record("d", application.DecisionChosen)
	l.Record("a", application.DecisionChosen)
	l.Record("b", application.DecisionRefused)

	chosen := l.ChosenJobs(catalog)
	if len(chosen) != 2 || chosen[0].ID != "a" || chosen[1].ID != "d" {
		t.Fatalf("chosen view must preserve catalog order, got %v", chosen)
	}

	refused := l.RefusedJobs(catalog)
	if len(refused) != 1 || refused[0].ID != "b" {
		t.Fatalf("unexpected refused view: %v", refused)
	}
}

func TestLedger_Applications_AppendOrder(t *testing.T) {
	l := New()
	l.Record("x", application.DecisionRefused)
	l.Record("y", application.DecisionChosen)

	apps := l.Applications()
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	if apps[0].JobID != "x" || apps[1].JobID != "y" {
		t.Fatalf("applications must keep append order")
	}
	if !l.HasDecision("x") || l.HasDecision("z") {
		t.Fatalf("HasDecision mismatch")
	}
}

package swipe

import (
	"testing"
	"time"
)

func TestMachine_SmallDragSpringsBack(t *testing.T) {
	rights, lefts := 0, 0
	m := NewMachine(300, func() { rights++ }, func() { lefts++ })

	m.PointerDown(0, 0)
	m.PointerMove(40, 0)
	if m.State() != StateDragging {
		t.Fatalf("expected dragging, got %s", m.State())
	}

	if st := m.PointerUp(); st != StateReturning {
		t.Fatalf("release at dx=40 (threshold 100) must return, got %s", st)
	}
	if rights != 0 || lefts != 0 {
		t.Fatalf("no callback may fire on a spring-back")
	}

	// After the animation the card is idle and draggable again.
	if st := m.Advance(time.Now().Add(time.Second)); st != StateIdle {
		t.Fatalf("expected idle after spring-back, got %s", st)
	}
	if st := m.PointerDown(0, 0); st != StateDragging {
		t.Fatalf("card must accept a new drag after returning, got %s", st)
	}
}

func TestMachine_LeftCommitFiresOnce(t *testing.T) {
	rights, lefts := 0, 0
	m := NewMachine(300, func() { rights++ }, func() { lefts++ })

	m.PointerDown(0, 0)
	m.PointerMove(-150, 0)
	if st := m.PointerUp(); st != StateCommittingLeft {
		t.Fatalf("release at dx=-150 must commit left, got %s", st)
	}
	if lefts != 1 || rights != 0 {
		t.Fatalf("expected exactly one left callback, got left=%d right=%d", lefts, rights)
	}

	// Duplicate release is inert.
	m.PointerUp()
	if lefts != 1 {
		t.Fatalf("callback fired twice")
	}
}

func TestMachine_RightCommitAtThresholdBoundary(t *testing.T) {
	rights := 0
	m := NewMachine(300, func() { rights++ }, nil)

	// Exactly at the threshold is not past it.
	m.PointerDown(0, 0)
	m.PointerMove(100, 0)
	if st := m.PointerUp(); st != StateReturning {
		t.Fatalf("dx equal to the threshold must spring back, got %s", st)
	}
	if rights != 0 {
		t.Fatalf("callback fired at the boundary")
	}

	m.Advance(time.Now().Add(time.Second))
	m.PointerDown(0, 0)
	m.PointerMove(101, 0)
	if st := m.PointerUp(); st != StateCommittingRight {
		t.Fatalf("dx past the threshold must commit, got %s", st)
	}
	if rights != 1 {
		t.Fatalf("expected one right callback, got %d", rights)
	}
}

func TestMachine_RedragAfterSpringBackWithoutAdvance(t *testing.T) {
	base := time.Now()
	m := NewMachine(300, nil, nil)
	m.now = func() time.Time { return base }

	m.PointerDown(0, 0)
	m.PointerMove(40, 0)
	if st := m.PointerUp(); st != StateReturning {
		t.Fatalf("expected returning, got %s", st)
	}

	// No Advance poll in between: once the animation deadline passes, the
	// next pointer-down must still start a fresh drag.
	base = base.Add(animDuration + 50*time.Millisecond)
	if st := m.PointerDown(0, 0); st != StateDragging {
		t.Fatalf("pointer-down after the spring-back ended must start a drag, got %s", st)
	}
}

func TestMachine_SpringBackStillRunningRejectsDrag(t *testing.T) {
	base := time.Now()
	m := NewMachine(300, nil, nil)
	m.now = func() time.Time { return base }

	m.PointerDown(0, 0)
	m.PointerMove(40, 0)
	m.PointerUp()

	// Mid-animation the card is still flying back; input stays ignored.
	base = base.Add(animDuration / 2)
	if st := m.PointerDown(0, 0); st != StateReturning {
		t.Fatalf("pointer-down during the spring-back must be ignored, got %s", st)
	}
}

func TestMachine_NoRedragAfterCommit(t *testing.T) {
	m := NewMachine(300, nil, nil)

	m.PointerDown(0, 0)
	m.PointerMove(200, 0)
	m.PointerUp()

	if st := m.Advance(time.Now().Add(time.Second)); st != StateSettled {
		t.Fatalf("expected settled after commit animation, got %s", st)
	}
	if st := m.PointerDown(0, 0); st != StateSettled {
		t.Fatalf("a committed card must reject new drags, got %s", st)
	}
}

func TestMachine_DragTransform(t *testing.T) {
	m := NewMachine(300, nil, nil)

	m.PointerDown(10, 20)
	m.PointerMove(60, 30)

	tr := m.Transform()
	if tr.TranslateX != 50 || tr.TranslateY != 10 {
		t.Fatalf("unexpected translation: %+v", tr)
	}
	if tr.Scale != dragScale {
		t.Fatalf("expected drag scale %v, got %v", dragScale, tr.Scale)
	}
	if tr.RightIndicator != 0.5 {
		t.Fatalf("dx=50 over threshold 100 must give 0.5 opacity, got %v", tr.RightIndicator)
	}
	if tr.LeftIndicator != 0 {
		t.Fatalf("left indicator must stay hidden on a right drag")
	}
}

func TestMachine_MoveIgnoredOutsideDrag(t *testing.T) {
	m := NewMachine(300, nil, nil)
	if st := m.PointerMove(50, 0); st != StateIdle {
		t.Fatalf("move without a down must be ignored, got %s", st)
	}
	if st := m.PointerUp(); st != StateIdle {
		t.Fatalf("up without a down must be ignored, got %s", st)
	}
	tr := m.Transform()
	if tr.TranslateX != 0 || tr.Scale != 1 {
		t.Fatalf("idle transform must be identity, got %+v", tr)
	}
}

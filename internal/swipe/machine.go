package swipe

import (
	"time"
)

// State of the gesture surface. Only the top card of the visible window
// owns a machine; cards beneath are inert.
type State string

const (
	StateIdle            State = "idle"
	StateDragging        State = "dragging"
	StateCommittingRight State = "committing_right"
	StateCommittingLeft  State = "committing_left"
	StateReturning       State = "returning"
	// StateSettled is terminal: the card finished its commit animation and
	// waits to be replaced by the next card. The machine accepts no further
	// pointer input.
	StateSettled State = "settled"
)

const (
	// ThresholdFraction of the card width converts a drag into a commit:
	// 100 units on the default 300-unit card.
	ThresholdFraction = 1.0 / 3.0
	DefaultCardWidth  = 300.0

	maxRotationDeg = 15.0
	dragScale      = 0.95

	animDuration = 250 * time.Millisecond
)

// Transform is the card's live visual state. Indicator values are the
// accept/reject badge opacities, interpolated over [0, threshold].
type Transform struct {
	TranslateX     float64 `json:"translate_x"`
	TranslateY     float64 `json:"translate_y"`
	RotationDeg    float64 `json:"rotation_deg"`
	Scale          float64 `json:"scale"`
	RightIndicator float64 `json:"right_indicator"`
	LeftIndicator  float64 `json:"left_indicator"`
}

func identityTransform() Transform {
	return Transform{Scale: 1}
}

// Machine drives one card through Idle → Dragging → (CommittingRight |
// CommittingLeft | Returning). The commit callback fires exactly once, at
// gesture release; afterwards the machine never re-enters Dragging.
type Machine struct {
	cardWidth float64
	threshold float64

	state     State
	originX   float64
	originY   float64
	dx        float64
	dy        float64
	committed bool

	onSwipeRight func()
	onSwipeLeft  func()

	anim *animation

	now func() time.Time
}

type animation struct {
	from  Transform
	to    Transform
	start time.Time
	next  State
}

func NewMachine(cardWidth float64, onSwipeRight, onSwipeLeft func()) *Machine {
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	return &Machine{
		cardWidth:    cardWidth,
		threshold:    cardWidth * ThresholdFraction,
		state:        StateIdle,
		onSwipeRight: onSwipeRight,
		onSwipeLeft:  onSwipeLeft,
		now:          time.Now,
	}
}

func (m *Machine) State() State {
	if m == nil {
		return StateIdle
	}
	return m.state
}

func (m *Machine) Threshold() float64 {
	if m == nil {
		return 0
	}
	return m.threshold
}

// PointerDown begins a drag. Ignored unless the machine is idle. A
// spring-back whose deadline already passed settles first, so the card
// accepts new input without waiting for an animation poll.
func (m *Machine) PointerDown(x, y float64) State {
	if m == nil {
		return StateIdle
	}
	m.settleExpired()
	if m.state != StateIdle || m.committed {
		return m.state
	}
	m.state = StateDragging
	m.originX = x
	m.originY = y
	m.dx = 0
	m.dy = 0
	m.anim = nil
	return m.state
}

// PointerMove updates the live transform while dragging. Ignored in every
// other state.
func (m *Machine) PointerMove(x, y float64) State {
	if m == nil {
		return StateIdle
	}
	m.settleExpired()
	if m.state != StateDragging {
		return m.state
	}
	m.dx = x - m.originX
	m.dy = y - m.originY
	return m.state
}

// PointerUp ends the drag and decides the outcome once, synchronously:
// past the threshold the card commits and the matching callback fires;
// otherwise it springs back.
func (m *Machine) PointerUp() State {
	if m == nil {
		return StateIdle
	}
	m.settleExpired()
	if m.state != StateDragging {
		return m.state
	}

	from := m.dragTransform()

	switch {
	case m.dx > m.threshold:
		m.committed = true
		m.startAnimation(from, m.offscreenTransform(1), StateCommittingRight, StateSettled)
		if m.onSwipeRight != nil {
			m.onSwipeRight()
		}
	case m.dx < -m.threshold:
		m.committed = true
		m.startAnimation(from, m.offscreenTransform(-1), StateCommittingLeft, StateSettled)
		if m.onSwipeLeft != nil {
			m.onSwipeLeft()
		}
	default:
		m.startAnimation(from, identityTransform(), StateReturning, StateIdle)
	}
	return m.state
}

// settleExpired finishes an animation whose deadline already passed, so
// the pointer path never observes a stale Returning or Committing state.
func (m *Machine) settleExpired() {
	if m.anim != nil {
		m.Advance(m.now())
	}
}

// Advance progresses a running animation. When the interpolation finishes,
// a returning card re-enters Idle and a committing card settles.
func (m *Machine) Advance(now time.Time) State {
	if m == nil {
		return StateIdle
	}
	if m.anim == nil {
		return m.state
	}
	if now.Sub(m.anim.start) >= animDuration {
		m.state = m.anim.next
		m.anim = nil
		m.dx = 0
		m.dy = 0
	}
	return m.state
}

// Transform returns the card's current visual state.
func (m *Machine) Transform() Transform {
	if m == nil {
		return identityTransform()
	}
	switch m.state {
	case StateDragging:
		return m.dragTransform()
	case StateCommittingRight, StateCommittingLeft, StateReturning:
		if m.anim == nil {
			return identityTransform()
		}
		p := float64(m.now().Sub(m.anim.start)) / float64(animDuration)
		return lerpTransform(m.anim.from, m.anim.to, easeOutCubic(clamp(p, 0, 1)))
	default:
		return identityTransform()
	}
}

func (m *Machine) startAnimation(from, to Transform, during, next State) {
	m.state = during
	m.anim = &animation{from: from, to: to, start: m.now(), next: next}
}

func (m *Machine) dragTransform() Transform {
	return Transform{
		TranslateX:     m.dx,
		TranslateY:     m.dy,
		RotationDeg:    clamp(m.dx/m.cardWidth, -1, 1) * maxRotationDeg,
		Scale:          dragScale,
		RightIndicator: clamp(m.dx/m.threshold, 0, 1),
		LeftIndicator:  clamp(-m.dx/m.threshold, 0, 1),
	}
}

func (m *Machine) offscreenTransform(dir float64) Transform {
	t := identityTransform()
	t.TranslateX = dir * m.cardWidth * 2
	t.TranslateY = m.dy
	if dir > 0 {
		t.RightIndicator = 1
	} else {
		t.LeftIndicator = 1
	}
	return t
}

func lerpTransform(a, b Transform, p float64) Transform {
	return Transform{
		TranslateX:     lerp(a.TranslateX, b.TranslateX, p),
		TranslateY:     lerp(a.TranslateY, b.TranslateY, p),
		RotationDeg:    lerp(a.RotationDeg, b.RotationDeg, p),
		Scale:          lerp(a.Scale, b.Scale, p),
		RightIndicator: lerp(a.RightIndicator, b.RightIndicator, p),
		LeftIndicator:  lerp(a.LeftIndicator, b.LeftIndicator, p),
	}
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

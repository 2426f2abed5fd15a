// Package reveal models the one-shot entrance animation of page sections.
//
// A Trigger starts Pending and moves to Fired the first time its section
// intersects the viewport shrunk by Margin. Nothing moves it back.
package reveal

import "time"

const (
	// Margin insets the viewport on every side before testing intersection.
	Margin = 100
	// Duration is the section's own transition.
	Duration = 600 * time.Millisecond
	// Stagger is the delay added per child index.
	Stagger = 150 * time.Millisecond
	// SectionOffset is how far below its resting place a pending section sits.
	SectionOffset = 30
	// ChildOffset is the same for staggered children.
	ChildOffset = 20
)

// State is the trigger state.
type State int

const (
	Pending State = iota
	Fired
)

func (s State) String() string {
	if s == Fired {
		return "fired"
	}
	return "pending"
}

// Rect is an axis-aligned box in page pixels. Bottom and Right are
// exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// Inset shrinks r by m on every side. A negative m grows it.
func (r Rect) Inset(m int) Rect {
	return Rect{Top: r.Top + m, Left: r.Left + m, Bottom: r.Bottom - m, Right: r.Right - m}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Bottom <= r.Top || r.Right <= r.Left
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Top < o.Bottom && o.Top < r.Bottom && r.Left < o.Right && o.Left < r.Right
}

// Trigger is one section's reveal guard. Not safe for concurrent use.
type Trigger struct {
	margin int
	state  State
}

// New returns a pending trigger using the package Margin.
func New() *Trigger {
	return &Trigger{margin: Margin}
}

// Observe reports a layout of target against viewport and returns true only
// if this observation fired the trigger.
func (t *Trigger) Observe(target, viewport Rect) bool {
	if t.state == Fired {
		return false
	}
	if !target.Intersects(viewport.Inset(t.margin)) {
		return false
	}
	t.state = Fired
	return true
}

// Fire records a visibility crossing reported by the client, which has
// already applied the margin. It returns true only the first time.
func (t *Trigger) Fire() bool {
	if t.state == Fired {
		return false
	}
	t.state = Fired
	return true
}

func (t *Trigger) State() State { return t.state }

func (t *Trigger) Fired() bool { return t.state == Fired }

// Margin is the viewport inset this trigger uses.
func (t *Trigger) Margin() int { return t.margin }

// Delay is the stagger delay of the child at index i.
func Delay(i int) time.Duration {
	if i < 0 {
		return 0
	}
	return time.Duration(i) * Stagger
}

// Package disclosure implements the expand/collapse skill card.
//
// A Panel owns exactly one expanded flag. Toggle is the only transition and
// it cannot fail; the accompanying animation is cosmetic and is described by
// the timing constants the templates render.
package disclosure

import (
	"strconv"
	"time"

	"github.com/amrtaher/portfolio/internal/icons"
)

const (
	// ContainerTransition is the detail region height/opacity transition.
	ContainerTransition = 300 * time.Millisecond
	// FillTransition is the proficiency bar fill animation.
	FillTransition = 1000 * time.Millisecond
	// FillEasing is the CSS timing function of the bar fill.
	FillEasing = "ease-out"
)

// State is the panel state.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Entry is the immutable input a panel is built from. Level is expected in
// [0,100] but is not checked.
type Entry struct {
	Label string
	Level int
	Icon  icons.Icon
}

// Panel is a single disclosure card. The zero value is not usable; build
// one with New. A Panel is not safe for concurrent use.
type Panel struct {
	entry Entry
	state State
}

// New returns a collapsed panel for entry.
func New(entry Entry) *Panel {
	return &Panel{entry: entry, state: Collapsed}
}

// Toggle flips the panel between collapsed and expanded.
func (p *Panel) Toggle() {
	if p.state == Expanded {
		p.state = Collapsed
		return
	}
	p.state = Expanded
}

func (p *Panel) State() State { return p.state }

func (p *Panel) Expanded() bool { return p.state == Expanded }

func (p *Panel) Entry() Entry { return p.entry }

// FillFraction is the end-state filled fraction of the bar track.
func (p *Panel) FillFraction() float64 {
	return float64(p.entry.Level) / 100
}

// PercentLabel is the exact level followed by a percent sign.
func (p *Panel) PercentLabel() string {
	return strconv.Itoa(p.entry.Level) + "%"
}

// FillWidth is the CSS width of the filled bar once the animation ends.
func (p *Panel) FillWidth() string {
	return p.PercentLabel()
}

// View is the render model of a panel.
type View struct {
	Index        int
	Label        string
	SymbolID     string
	Expanded     bool
	PercentLabel string
	FillWidth    string
	ContainerMS  int64
	FillMS       int64
	FillEasing   string
}

// View snapshots the panel for rendering. index identifies the panel within
// its owner.
func (p *Panel) View(index int) View {
	return View{
		Index:        index,
		Label:        p.entry.Label,
		SymbolID:     icons.SymbolID(p.entry.Icon),
		Expanded:     p.Expanded(),
		PercentLabel: p.PercentLabel(),
		FillWidth:    p.FillWidth(),
		ContainerMS:  ContainerTransition.Milliseconds(),
		FillMS:       FillTransition.Milliseconds(),
		FillEasing:   FillEasing,
	}
}

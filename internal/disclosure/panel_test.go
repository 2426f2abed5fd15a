package disclosure

import (
	"testing"

	"github.com/amrtaher/portfolio/internal/icons"
)

func TestNewPanelIsCollapsed(t *testing.T) {
	t.Parallel()
	p := New(Entry{Label: "Python", Level: 95, Icon: icons.Terminal})
	if p.State() != Collapsed {
		t.Fatalf("State() = %s, want collapsed", p.State())
	}
	if p.View(0).Expanded {
		t.Fatal("detail region should not render while collapsed")
	}
}

func TestToggleExpandsWithExactLevel(t *testing.T) {
	t.Parallel()
	p := New(Entry{Label: "Python", Level: 95, Icon: icons.Terminal})
	p.Toggle()

	if !p.Expanded() {
		t.Fatal("expected expanded after one toggle")
	}
	if got := p.PercentLabel(); got != "95%" {
		t.Fatalf("PercentLabel() = %q, want %q", got, "95%")
	}
	if got := p.FillFraction(); got != 0.95 {
		t.Fatalf("FillFraction() = %v, want 0.95", got)
	}
	if got := p.FillWidth(); got != "95%" {
		t.Fatalf("FillWidth() = %q, want %q", got, "95%")
	}
}

func TestFillFractionMatchesLevel(t *testing.T) {
	t.Parallel()
	for level := 0; level <= 100; level++ {
		p := New(Entry{Label: "x", Level: level})
		p.Toggle()
		if got, want := p.FillFraction(), float64(level)/100; got != want {
			t.Fatalf("level %d: FillFraction() = %v, want %v", level, got, want)
		}
	}
}

func TestDoubleToggleRestoresState(t *testing.T) {
	t.Parallel()
	for _, start := range []State{Collapsed, Expanded} {
		p := New(Entry{Label: "Robotics", Level: 87})
		if start == Expanded {
			p.Toggle()
		}
		p.Toggle()
		p.Toggle()
		if p.State() != start {
			t.Errorf("start %s: after two toggles got %s", start, p.State())
		}
	}
}

func TestPanelsAreIndependent(t *testing.T) {
	t.Parallel()
	a := New(Entry{Label: "NLP", Level: 92})
	b := New(Entry{Label: "SQL", Level: 80})

	a.Toggle()
	if b.Expanded() {
		t.Fatal("toggling a changed b")
	}
	b.Toggle()
	b.Toggle()
	if !a.Expanded() {
		t.Fatal("toggling b changed a")
	}
}

func TestOutOfRangeLevelIsNotValidated(t *testing.T) {
	t.Parallel()
	p := New(Entry{Label: "Overconfident", Level: 140})
	p.Toggle()
	if got := p.PercentLabel(); got != "140%" {
		t.Fatalf("PercentLabel() = %q, want %q", got, "140%")
	}
}

func TestViewCarriesTimings(t *testing.T) {
	t.Parallel()
	v := New(Entry{Label: "Keras", Level: 88, Icon: icons.Code}).View(10)
	if v.Index != 10 || v.Label != "Keras" {
		t.Fatalf("unexpected view identity: %+v", v)
	}
	if v.SymbolID != "lucide-code-xml" {
		t.Fatalf("SymbolID = %q", v.SymbolID)
	}
	if v.ContainerMS != 300 || v.FillMS != 1000 || v.FillEasing != "ease-out" {
		t.Fatalf("unexpected timings: %+v", v)
	}
}

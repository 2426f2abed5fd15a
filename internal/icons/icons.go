package icons

// Icon is a symbolic icon reference. Values are Lucide icon names.
type Icon string

const (
	BrainCircuit  Icon = "brain-circuit"
	Cpu           Icon = "cpu"
	Terminal      Icon = "terminal"
	Code          Icon = "code-xml"
	GraduationCap Icon = "graduation-cap"
	Award         Icon = "award"
	ChevronDown   Icon = "chevron-down"
	Sun           Icon = "sun"
	Moon          Icon = "moon"
	Mail          Icon = "mail"
	MessageCircle Icon = "message-circle"
	Linkedin      Icon = "linkedin"
	Github        Icon = "github"
	Sparkle       Icon = "sparkle"
)

// Fallback is rendered for references the sprite does not know.
const Fallback = Sparkle

const lucideSymbolPrefix = "lucide-"

var known = map[Icon]struct{}{
	BrainCircuit:  {},
	Cpu:           {},
	Terminal:      {},
	Code:          {},
	GraduationCap: {},
	Award:         {},
	ChevronDown:   {},
	Sun:           {},
	Moon:          {},
	Mail:          {},
	MessageCircle: {},
	Linkedin:      {},
	Github:        {},
	Sparkle:       {},
}

// Known reports whether the sprite carries a symbol for icon.
func Known(icon Icon) bool {
	_, ok := known[icon]
	return ok
}

// OrDefault provides a stable icon even when the reference is unknown.
func OrDefault(icon Icon) Icon {
	if Known(icon) {
		return icon
	}
	return Fallback
}

// SymbolID returns the sprite symbol ID for an icon, falling back for
// unknown references.
func SymbolID(icon Icon) string {
	return lucideSymbolPrefix + string(OrDefault(icon))
}

// All returns every icon the sprite provides.
func All() []Icon {
	out := make([]Icon, 0, len(known))
	for icon := range known {
		out = append(out, icon)
	}
	return out
}

package server

import (
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/amrtaher/portfolio/internal/content"
	"github.com/amrtaher/portfolio/internal/disclosure"
	"github.com/amrtaher/portfolio/internal/icons"
	"github.com/amrtaher/portfolio/internal/reveal"
	"github.com/amrtaher/portfolio/internal/session"
)

// Section ids, in page order. Each one is a nav anchor and a rendered
// section.
const (
	SectionAbout     = "about"
	SectionSkills    = "skills"
	SectionEducation = "education"
	SectionTraining  = "training"
	SectionProjects  = "projects"
	SectionContact   = "contact"
)

var sectionOrder = []string{
	SectionAbout,
	SectionSkills,
	SectionEducation,
	SectionTraining,
	SectionProjects,
	SectionContact,
}

// SectionIDs returns the section ids in page order.
func SectionIDs() []string {
	return append([]string(nil), sectionOrder...)
}

type navLink struct {
	Label  string
	Anchor string
}

func navLinks() []navLink {
	title := cases.Title(language.English)
	links := make([]navLink, len(sectionOrder))
	for i, id := range sectionOrder {
		links[i] = navLink{Label: title.String(id), Anchor: "#" + id}
	}
	return links
}

func skillEntries(store *content.Store) []disclosure.Entry {
	skills := store.Skills()
	entries := make([]disclosure.Entry, len(skills))
	for i, s := range skills {
		entries[i] = disclosure.Entry{Label: s.Name, Level: s.Proficiency, Icon: s.Icon}
	}
	return entries
}

type contactView struct {
	content.ContactLink
	SymbolID string
	External bool
}

type revealView struct {
	Margin     int
	DurationMS int64
	Offset     int
	ChildShift int
}

// pageData is everything index.html renders.
type pageData struct {
	SessionID string
	Title     string
	RootClass string
	Dark      bool

	Profile   content.Profile
	About     []template.HTML
	Nav       []navLink
	Skills    []disclosure.View
	Education content.Education
	Trainings []content.Training
	Projects  []content.Project

	ContactBlurb string
	Contacts     []contactView

	Icons  map[string]string
	Reveal revealView
	Year   int
}

func (s *Server) buildPage(snap session.Snapshot) pageData {
	profile := s.content.Profile()

	links := s.content.ContactLinks()
	contacts := make([]contactView, len(links))
	for i, l := range links {
		contacts[i] = contactView{
			ContactLink: l,
			SymbolID:    icons.SymbolID(l.Kind.Icon()),
			External:    l.Kind.External(),
		}
	}

	return pageData{
		SessionID: snap.ID,
		Title:     profile.FullName(),
		RootClass: snap.RootClass,
		Dark:      snap.Dark,

		Profile:   profile,
		About:     s.content.AboutHTML(),
		Nav:       navLinks(),
		Skills:    snap.Panels,
		Education: s.content.Education(),
		Trainings: s.content.Trainings(),
		Projects:  s.content.Projects(),

		ContactBlurb: s.content.ContactBlurb(),
		Contacts:     contacts,

		Icons: map[string]string{
			"chevron":   icons.SymbolID(icons.ChevronDown),
			"sun":       icons.SymbolID(icons.Sun),
			"moon":      icons.SymbolID(icons.Moon),
			"award":     icons.SymbolID(icons.Award),
			"education": icons.SymbolID(icons.GraduationCap),
		},
		Reveal: revealView{
			Margin:     reveal.Margin,
			DurationMS: reveal.Duration.Milliseconds(),
			Offset:     reveal.SectionOffset,
			ChildShift: reveal.ChildOffset,
		},
		Year: s.now().Year(),
	}
}

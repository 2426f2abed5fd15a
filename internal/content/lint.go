package content

import (
	"fmt"
	"strings"
)

// Warning is a content problem reported by Lint.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Lint reports suspicious content. The page renders regardless; out of
// range proficiencies simply draw an out of range bar.
func (s *Store) Lint() []Warning {
	var warnings []Warning
	add := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(s.doc.Profile.FirstName) == "" {
		add("profile.first_name", "empty")
	}
	if strings.TrimSpace(s.doc.Profile.Portrait) == "" {
		add("profile.portrait", "empty")
	}

	seen := make(map[string]int)
	for i, skill := range s.doc.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if strings.TrimSpace(skill.Name) == "" {
			add(field+".name", "empty")
		}
		if skill.Proficiency < 0 || skill.Proficiency > 100 {
			add(field+".proficiency", "%d outside [0,100]", skill.Proficiency)
		}
		if prev, ok := seen[skill.Name]; ok {
			add(field+".name", "duplicate of skills[%d]", prev)
		} else {
			seen[skill.Name] = i
		}
	}

	seenTraining := make(map[Training]int)
	for i, t := range s.doc.Trainings {
		field := fmt.Sprintf("trainings[%d]", i)
		if strings.TrimSpace(t.Title) == "" {
			add(field+".title", "empty")
		}
		if prev, ok := seenTraining[t]; ok {
			add(field, "duplicate of trainings[%d]", prev)
		} else {
			seenTraining[t] = i
		}
	}
	seenProject := make(map[string]int)
	for i, p := range s.doc.Projects {
		field := fmt.Sprintf("projects[%d].title", i)
		if strings.TrimSpace(p.Title) == "" {
			add(field, "empty")
		}
		if prev, ok := seenProject[p.Title]; ok {
			add(field, "duplicate of projects[%d]", prev)
		} else {
			seenProject[p.Title] = i
		}
	}
	for i, l := range s.doc.Contact.Links {
		if strings.TrimSpace(l.Href) == "" {
			add(fmt.Sprintf("contact.links[%d].href", i), "empty")
		}
		if l.Kind == ContactEmail && !strings.HasPrefix(l.Href, "mailto:") {
			add(fmt.Sprintf("contact.links[%d].href", i), "email link without mailto: scheme")
		}
	}
	return warnings
}

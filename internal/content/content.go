// Package content holds the portfolio's static content store.
//
// The store is built once from a YAML document (the embedded default or an
// override file) and never changes afterwards. Accessors hand out copies so
// callers cannot mutate the shared records.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/amrtaher/portfolio/internal/icons"
)

//go:embed content.yaml
var embedded []byte

// Skill is a single proficiency entry shown as a disclosure card.
type Skill struct {
	Name        string     `yaml:"name"`
	Proficiency int        `yaml:"proficiency"`
	Icon        icons.Icon `yaml:"icon"`
}

// Training is a certification or training programme.
type Training struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
}

// Project is a portfolio project card.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Profile describes the person the portfolio presents.
type Profile struct {
	FirstName    string   `yaml:"first_name"`
	LastName     string   `yaml:"last_name"`
	Headline     string   `yaml:"headline"`
	Availability string   `yaml:"availability"`
	Portrait     string   `yaml:"portrait"`
	PortraitAlt  string   `yaml:"portrait_alt"`
	About        []string `yaml:"about"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Education is the single education entry.
type Education struct {
	Institution string `yaml:"institution"`
	College     string `yaml:"college"`
	Department  string `yaml:"department"`
}

// ContactKind identifies the kind of outbound link.
type ContactKind string

const (
	ContactWhatsApp ContactKind = "whatsapp"
	ContactLinkedIn ContactKind = "linkedin"
	ContactGitHub   ContactKind = "github"
	ContactEmail    ContactKind = "email"
)

// Icon returns the icon rendered next to a contact link.
func (k ContactKind) Icon() icons.Icon {
	switch k {
	case ContactWhatsApp:
		return icons.MessageCircle
	case ContactLinkedIn:
		return icons.Linkedin
	case ContactGitHub:
		return icons.Github
	case ContactEmail:
		return icons.Mail
	default:
		return icons.Fallback
	}
}

// External reports whether the link opens in a new tab. mailto links do not.
func (k ContactKind) External() bool {
	return k != ContactEmail
}

// ContactLink is an opaque outbound link rendered verbatim.
type ContactLink struct {
	Kind  ContactKind `yaml:"kind"`
	Label string      `yaml:"label"`
	Href  string      `yaml:"href"`
}

type contact struct {
	Blurb string        `yaml:"blurb"`
	Links []ContactLink `yaml:"links"`
}

type document struct {
	Profile   Profile    `yaml:"profile"`
	Education Education  `yaml:"education"`
	Skills    []Skill    `yaml:"skills"`
	Trainings []Training `yaml:"trainings"`
	Projects  []Project  `yaml:"projects"`
	Contact   contact    `yaml:"contact"`
}

// Store is the immutable content store.
type Store struct {
	doc   document
	about []template.HTML
}

// Load builds a store from a YAML document. Unknown fields are rejected.
func Load(data []byte) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	about, err := renderParagraphs(doc.Profile.About)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	return &Store{doc: doc, about: about}, nil
}

// LoadFile builds a store from a YAML file on disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	store, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return store, nil
}

var defaultStore = sync.OnceValues(func() (*Store, error) {
	return Load(embedded)
})

// Default returns the store built from the embedded content document.
func Default() (*Store, error) {
	return defaultStore()
}

// MustDefault is Default for callers that treat a broken embedded
// document as a programming error.
func MustDefault() *Store {
	store, err := Default()
	if err != nil {
		panic(err)
	}
	return store
}

// Open returns the override store at path, or the embedded default when
// path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func (s *Store) Profile() Profile {
	p := s.doc.Profile
	p.About = slices.Clone(p.About)
	return p
}

// AboutHTML returns the about paragraphs rendered from Markdown.
func (s *Store) AboutHTML() []template.HTML {
	return slices.Clone(s.about)
}

func (s *Store) Education() Education {
	return s.doc.Education
}

func (s *Store) Skills() []Skill {
	return slices.Clone(s.doc.Skills)
}

// Skill returns the skill at index i.
func (s *Store) Skill(i int) (Skill, bool) {
	if i < 0 || i >= len(s.doc.Skills) {
		return Skill{}, false
	}
	return s.doc.Skills[i], true
}

func (s *Store) Trainings() []Training {
	return slices.Clone(s.doc.Trainings)
}

func (s *Store) Projects() []Project {
	out := make([]Project, len(s.doc.Projects))
	for i, p := range s.doc.Projects {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out
}

func (s *Store) ContactBlurb() string {
	return s.doc.Contact.Blurb
}

func (s *Store) ContactLinks() []ContactLink {
	return slices.Clone(s.doc.Contact.Links)
}

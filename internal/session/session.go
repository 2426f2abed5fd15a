// Package session keeps the interactive state of each page load.
//
// Every GET of the page starts a new Page: dark theme, every skill panel
// collapsed, every section reveal pending. Fragment requests then mutate
// that Page. Pages idle longer than the store TTL are swept.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amrtaher/portfolio/internal/disclosure"
	"github.com/amrtaher/portfolio/internal/reveal"
	"github.com/amrtaher/portfolio/internal/theme"
)

var (
	ErrSessionNotFound = errors.New("page session not found")
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrUnknownSection  = errors.New("unknown section")
)

// RootClasses are the classes the root element carries besides the theme
// marker.
var RootClasses = []string{"scroll-smooth"}

// Blueprint describes what every new Page is made of.
type Blueprint struct {
	Skills   []disclosure.Entry
	Sections []string
}

// Page is the state of one page load. Its methods are safe for concurrent
// use; the underlying widgets are not, so every access holds mu.
type Page struct {
	id string

	mu      sync.Mutex
	theme   *theme.Controller
	panels  []*disclosure.Panel
	reveals map[string]*reveal.Trigger
}

func newPage(id string, bp Blueprint) *Page {
	p := &Page{
		id:      id,
		theme:   theme.NewController(theme.NewClassList(RootClasses...)),
		panels:  make([]*disclosure.Panel, len(bp.Skills)),
		reveals: make(map[string]*reveal.Trigger, len(bp.Sections)),
	}
	for i, e := range bp.Skills {
		p.panels[i] = disclosure.New(e)
	}
	for _, s := range bp.Sections {
		p.reveals[s] = reveal.New()
	}
	return p
}

func (p *Page) ID() string { return p.id }

// ThemeView is the theme state after a change.
type ThemeView struct {
	Dark      bool
	RootClass string
}

// ToggleTheme flips the page's theme.
func (p *Page) ToggleTheme() ThemeView {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme.Toggle()
	return ThemeView{Dark: p.theme.IsDark(), RootClass: p.theme.Root().String()}
}

// SetDark sets the page's theme explicitly.
func (p *Page) SetDark(dark bool) ThemeView {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme.SetDark(dark)
	return ThemeView{Dark: p.theme.IsDark(), RootClass: p.theme.Root().String()}
}

// ToggleSkill toggles the panel at index i and returns its new view.
func (p *Page) ToggleSkill(i int) (disclosure.View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.panels) {
		return disclosure.View{}, fmt.Errorf("skill %d: %w", i, ErrUnknownSkill)
	}
	p.panels[i].Toggle()
	return p.panels[i].View(i), nil
}

// RestoreSkill puts the panel at index i into the given state without
// toggling through the other one. It seeds a fresh page from what the
// browser already shows.
func (p *Page) RestoreSkill(i int, expanded bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.panels) {
		return fmt.Errorf("skill %d: %w", i, ErrUnknownSkill)
	}
	if p.panels[i].Expanded() != expanded {
		p.panels[i].Toggle()
	}
	return nil
}

// FireReveal records the first visibility of a section. fired is false when
// the section had already been revealed.
func (p *Page) FireReveal(section string) (fired bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	tr, ok := p.reveals[section]
	if !ok {
		return false, fmt.Errorf("section %q: %w", section, ErrUnknownSection)
	}
	return tr.Fire(), nil
}

// Snapshot is a consistent copy of a page's state for rendering.
type Snapshot struct {
	ID        string
	Dark      bool
	RootClass string
	Panels    []disclosure.View
	Revealed  map[string]bool
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := Snapshot{
		ID:        p.id,
		Dark:      p.theme.IsDark(),
		RootClass: p.theme.Root().String(),
		Panels:    make([]disclosure.View, len(p.panels)),
		Revealed:  make(map[string]bool, len(p.reveals)),
	}
	for i, panel := range p.panels {
		snap.Panels[i] = panel.View(i)
	}
	for id, tr := range p.reveals {
		snap.Revealed[id] = tr.Fired()
	}
	return snap
}

type entry struct {
	page     *Page
	lastSeen time.Time
}

// Store holds live pages.
type Store struct {
	blueprint Blueprint
	ttl       time.Duration
	maxPages  int

	mu    sync.Mutex
	pages map[string]*entry

	now   func() time.Time
	newID func() string
}

// NewStore returns a store whose pages expire after ttl without activity.
// A non-positive ttl disables expiry. At most maxPages pages are kept; creating
// one more evicts the page idle the longest. A non-positive maxPages means no
// limit.
func NewStore(bp Blueprint, ttl time.Duration, maxPages int) *Store {
	return &Store{
		blueprint: bp,
		ttl:       ttl,
		maxPages:  maxPages,
		pages:     make(map[string]*entry),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Create starts a fresh page.
func (s *Store) Create() *Page {
	page := newPage(s.newID(), s.blueprint)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxPages > 0 && len(s.pages) >= s.maxPages {
		s.evictOldest()
	}
	s.pages[page.id] = &entry{page: page, lastSeen: s.now()}
	return page
}

// evictOldest drops the page idle the longest. s.mu must be held.
func (s *Store) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.pages {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(s.pages, oldestID)
}

// Get returns the live page with id and refreshes its idle timer.
func (s *Store) Get(id string) (*Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pages[id]
	if !ok || s.expired(e) {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = s.now()
	return e.page, nil
}

// Resolve returns the page with id, or a fresh one when id is unknown or
// expired. created tells which.
func (s *Store) Resolve(id string) (page *Page, created bool) {
	if id != "" {
		if p, err := s.Get(id); err == nil {
			return p, false
		}
	}
	return s.Create(), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}

// Sweep removes expired pages and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.pages {
		if s.expired(e) {
			delete(s.pages, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("Session sweep: removed %d idle page sessions", n)
			}
		}
	}
}

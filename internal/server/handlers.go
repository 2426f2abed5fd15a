package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amrtaher/portfolio/internal/session"
)

// SessionHeader carries the page session id on fragment requests. The page
// sets it for every htmx request through hx-headers, so each open tab has
// its own session.
const SessionHeader = "X-Page-Session"

const (
	pageKey  = "page"
	freshKey = "freshPage"
)

// handleIndex renders the full page. Every load starts a fresh page
// session, so the theme is dark and every panel collapsed.
func (s *Server) handleIndex(c *gin.Context) {
	page := s.sessions.Create()
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", s.buildPage(page.Snapshot()))
}

// pageSession resolves the caller's page session for fragment routes. A
// missing or expired id gets a fresh session, echoed back in SessionHeader.
// Handlers seed a fresh session from the state the request reports, so the
// change applies to what the browser shows.
func (s *Server) pageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, created := s.sessions.Resolve(c.GetHeader(SessionHeader))
		if created {
			c.Header(SessionHeader, page.ID())
		}
		c.Set(pageKey, page)
		c.Set(freshKey, created)
		c.Next()
	}
}

func currentPage(c *gin.Context) *session.Page {
	return c.MustGet(pageKey).(*session.Page)
}

// reportedState returns the boolean form value name when the page session
// was just created and the client sent one.
func reportedState(c *gin.Context, name string) (value, ok bool) {
	if !c.GetBool(freshKey) {
		return false, false
	}
	v, err := strconv.ParseBool(c.PostForm(name))
	if err != nil {
		return false, false
	}
	return v, true
}

// setTrigger sets the HX-Trigger header so htmx dispatches event with
// detail on the requesting element.
func setTrigger(c *gin.Context, event string, detail any) {
	payload, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		log.Printf("Error encoding %s trigger: %v", event, err)
		return
	}
	c.Header("HX-Trigger", string(payload))
}

func (s *Server) handleToggleSkill(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown skill")
		return
	}
	page := currentPage(c)
	if expanded, ok := reportedState(c, "expanded"); ok {
		if err := page.RestoreSkill(index, expanded); errors.Is(err, session.ErrUnknownSkill) {
			c.String(http.StatusNotFound, "unknown skill")
			return
		}
	}
	view, err := page.ToggleSkill(index)
	if errors.Is(err, session.ErrUnknownSkill) {
		c.String(http.StatusNotFound, "unknown skill")
		return
	}
	c.HTML(http.StatusOK, "skill-card", view)
}

type themeChanged struct {
	Dark  bool   `json:"dark"`
	Class string `json:"class"`
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	page := currentPage(c)
	if dark, ok := reportedState(c, "dark"); ok {
		page.SetDark(dark)
	}
	v := page.ToggleTheme()
	setTrigger(c, "theme-changed", themeChanged{Dark: v.Dark, Class: v.RootClass})
	c.Status(http.StatusNoContent)
}

type sectionRevealed struct {
	ID    string `json:"id"`
	Fired bool   `json:"fired"`
}

func (s *Server) handleReveal(c *gin.Context) {
	id := c.Param("id")
	fired, err := currentPage(c).FireReveal(id)
	if errors.Is(err, session.ErrUnknownSection) {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	setTrigger(c, "section-revealed", sectionRevealed{ID: id, Fired: fired})
	c.Status(http.StatusNoContent)
}

// Package theme holds the dark/light preference of a page.
package theme

import "strings"

// MarkerClass is the root class the stylesheet keys dark mode on.
const MarkerClass = "dark"

// ClassList is an ordered set of class names, like an element's classList.
type ClassList struct {
	names []string
}

// NewClassList returns a list holding the given classes, duplicates dropped.
func NewClassList(names ...string) *ClassList {
	l := &ClassList{}
	for _, n := range names {
		l.Add(n)
	}
	return l
}

// Add inserts name unless it is already present or blank.
func (l *ClassList) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" || l.Contains(name) {
		return
	}
	l.names = append(l.names, name)
}

// Remove deletes name if present.
func (l *ClassList) Remove(name string) {
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			return
		}
	}
}

func (l *ClassList) Contains(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// Count returns how many times name occurs. It is 0 or 1.
func (l *ClassList) Count(name string) int {
	c := 0
	for _, n := range l.names {
		if n == name {
			c++
		}
	}
	return c
}

// String renders the list as a class attribute value.
func (l *ClassList) String() string {
	return strings.Join(l.names, " ")
}

// Controller owns the dark flag and applies it to a root class list.
// It is the only writer of both. Not safe for concurrent use.
type Controller struct {
	dark bool
	root *ClassList
}

// NewController applies the default (dark) preference to root. A nil root
// gets a fresh empty list.
func NewController(root *ClassList) *Controller {
	if root == nil {
		root = NewClassList()
	}
	c := &Controller{root: root}
	c.SetDark(true)
	return c
}

// SetDark sets the preference and adds or removes the marker class.
// Repeating the current value changes nothing.
func (c *Controller) SetDark(dark bool) {
	c.dark = dark
	if dark {
		c.root.Add(MarkerClass)
		return
	}
	c.root.Remove(MarkerClass)
}

// Toggle is SetDark(!IsDark()).
func (c *Controller) Toggle() {
	c.SetDark(!c.dark)
}

func (c *Controller) IsDark() bool { return c.dark }

// Root is the class list the marker is applied to.
func (c *Controller) Root() *ClassList { return c.root }

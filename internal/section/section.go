// Package section defines the fixed, ordered set of scrollable regions that
// make up the portfolio page.
package section

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies one named region of the page. The value doubles as the
// element id in the web renderer.
type Section string

const (
	Home         Section = "home"
	About        Section = "about"
	Resume       Section = "resume"
	Projects     Section = "projects"
	Publications Section = "publications"
	Contact      Section = "contact"
)

// First is the section the page starts on and the one that scrolls to the
// absolute top.
const First = Home

// ErrUnknown is returned by Parse for names outside the fixed set.
var ErrUnknown = errors.New("unknown section")

var ordered = []Section{Home, About, Resume, Projects, Publications, Contact}

var upper = cases.Upper(language.English)

// All returns the sections in page order.
func All() []Section {
	out := make([]Section, len(ordered))
	copy(out, ordered)
	return out
}

// Parse maps a name to its Section.
func Parse(name string) (Section, error) {
	for _, s := range ordered {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Index reports the position of s in page order, or -1.
func (s Section) Index() int {
	for i, candidate := range ordered {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s belongs to the fixed set.
func (s Section) Valid() bool { return s.Index() >= 0 }

// ID is the DOM element id for the section.
func (s Section) ID() string { return string(s) }

// Label is the navigation caption.
func (s Section) Label() string { return upper.String(string(s)) }

func (s Section) String() string { return string(s) }

// Package content holds the static display data of the portfolio. The data is
// embedded at build time and never changes while the process runs.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pranjal299/portfolio/internal/icons"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

// ErrInvalid marks content that fails validation.
var ErrInvalid = errors.New("invalid content")

// Owner is the person the portfolio presents.
type Owner struct {
	Name          string `yaml:"name"`
	Initials      string `yaml:"initials"`
	Role          string `yaml:"role"`
	CopyrightYear int    `yaml:"copyright_year"`
}

// Skill is one card in the about section.
type Skill struct {
	Title  string     `yaml:"title"`
	Skills string     `yaml:"skills"`
	Icon   icons.Icon `yaml:"icon"`
}

// Project is one carousel entry.
type Project struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Icon        icons.Icon `yaml:"icon"`
	Link        string     `yaml:"link"`
}

// Publication is a published paper.
type Publication struct {
	Title string `yaml:"title"`
	Venue string `yaml:"venue"`
	Year  int    `yaml:"year"`
	URL   string `yaml:"url"`
}

// Social is an outbound contact link.
type Social struct {
	Label string     `yaml:"label"`
	URL   string     `yaml:"url"`
	Icon  icons.Icon `yaml:"icon"`
}

// Portfolio is the complete page content.
type Portfolio struct {
	Owner        Owner         `yaml:"owner"`
	Skills       []Skill       `yaml:"skills"`
	Projects     []Project     `yaml:"projects"`
	Publications []Publication `yaml:"publications"`
	Socials      []Social      `yaml:"socials"`

	About       template.HTML `yaml:"-"`
	AboutText   string        `yaml:"-"`
	ResumeBlurb string        `yaml:"-"`
}

// Load parses the embedded content.
func Load() (*Portfolio, error) {
	return Parse(portfolioYAML, AboutMe)
}

// Parse decodes raw YAML content and renders the about markdown.
func Parse(raw []byte, aboutMarkdown string) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio content: %w", err)
	}
	for i := range p.Projects {
		if p.Projects[i].Link == "" {
			p.Projects[i].Link = "#"
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	about, err := RenderMarkdown(aboutMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render about text: %w", err)
	}
	p.About = about
	p.AboutText = plainText(aboutMarkdown)
	p.ResumeBlurb = ResumeBlurb
	return &p, nil
}

// Validate checks required fields and icon tags.
func (p *Portfolio) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Owner.Name) == "" {
		problems = append(problems, "owner name is empty")
	}
	for i, s := range p.Skills {
		if !s.Icon.Valid() {
			problems = append(problems, fmt.Sprintf("skill %d: unknown icon %q", i, s.Icon))
		}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			problems = append(problems, fmt.Sprintf("project %d: title is empty", i))
		}
		if !pr.Icon.Valid() {
			problems = append(problems, fmt.Sprintf("project %d: unknown icon %q", i, pr.Icon))
		}
	}
	for i, pub := range p.Publications {
		if strings.TrimSpace(pub.Title) == "" || strings.TrimSpace(pub.URL) == "" {
			problems = append(problems, fmt.Sprintf("publication %d: title and url are required", i))
		}
	}
	for i, s := range p.Socials {
		if !s.Icon.Valid() {
			problems = append(problems, fmt.Sprintf("social %d: unknown icon %q", i, s.Icon))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

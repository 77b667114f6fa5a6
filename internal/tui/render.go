package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/icons"
	"github.com/pranjal299/portfolio/internal/page"
	"github.com/pranjal299/portfolio/internal/section"
)

// span is the line range [start, start+height) a section occupies.
type span struct {
	start  int
	height int
}

// document is the rendered page and where each section landed.
type document struct {
	body  string
	spans map[section.Section]span
	lines int
}

// renderDocument lays out every section top to bottom. Each section is at
// least minHeight lines tall so any of them can be scrolled to the top.
func renderDocument(v page.View, resumeURL string, width, minHeight int) document {
	width = max(width, 20)
	renderers := []struct {
		id   section.Section
		draw func() string
	}{
		{section.Home, func() string { return renderHome(v.Content, width) }},
		{section.About, func() string { return renderAbout(v.Content, width) }},
		{section.Resume, func() string { return renderResume(v.Content, resumeURL, width) }},
		{section.Projects, func() string { return renderProjects(v.Carousel, width) }},
		{section.Publications, func() string { return renderPublications(v.Content, width) }},
		{section.Contact, func() string { return renderContact(v.Content, width) }},
	}

	doc := document{spans: make(map[section.Section]span, len(renderers))}
	var parts []string
	line := 0
	for _, r := range renderers {
		block := lipgloss.NewStyle().Width(width).Height(minHeight).Render(r.draw())
		h := lipgloss.Height(block)
		doc.spans[r.id] = span{start: line, height: h}
		parts = append(parts, block)
		line += h
	}
	footer := styles.Footer.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("© %d %s. All rights reserved.", v.Content.Owner.CopyrightYear, v.Content.Owner.Name))
	parts = append(parts, footer)
	doc.body = strings.Join(parts, "\n")
	doc.lines = line + lipgloss.Height(footer)
	return doc
}

func heading(title string) string {
	return styles.Heading.Render(strings.ToUpper(title))
}

func renderHome(p *content.Portfolio, width int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.Name.Render(p.Owner.Name),
		styles.Role.Render(p.Owner.Role),
		"",
		styles.Muted.Render("["+content.HeroCallToAction+": press 2]"),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func renderAbout(p *content.Portfolio, width int) string {
	cardWidth := max((width-4)/3-2, 12)
	cards := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		cards = append(cards, styles.Card.Width(cardWidth).Render(
			styles.CardTitle.Render(icons.Glyph(s.Icon)+" "+s.Title)+"\n"+styles.Body.Render(s.Skills),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading("About Me"),
		styles.Body.Width(width).Render(p.AboutText),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}

func renderResume(p *content.Portfolio, resumeURL string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		heading("Resume"),
		styles.Card.Width(max(width-4, 12)).Render(
			icons.Glyph(icons.FileText)+" "+p.ResumeBlurb+"\n\n"+
				styles.Link.Render("View Resume "+icons.Glyph(icons.ExternalLink)+" "+resumeURL),
		),
	)
}

func renderProjects(c page.CarouselView, width int) string {
	arrowWidth := 3
	cardWidth := max((width-2*arrowWidth)/3-2, 12)

	cards := make([]string, 0, len(c.Projects))
	for _, pr := range c.Projects {
		cards = append(cards, styles.Card.Width(cardWidth).Render(
			styles.CardTitle.Render(icons.Glyph(pr.Icon))+"\n\n"+
				styles.CardTitle.Render(pr.Title)+"\n"+
				styles.Body.Render(pr.Description),
		))
	}

	left, right := strings.Repeat(" ", arrowWidth), strings.Repeat(" ", arrowWidth)
	if c.CanRetreat {
		left = styles.Arrow.Width(arrowWidth).Render(icons.Glyph(icons.ChevronLeft))
	}
	if c.CanAdvance {
		right = styles.Arrow.Width(arrowWidth).Align(lipgloss.Right).Render(icons.Glyph(icons.ChevronRight))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.JoinHorizontal(lipgloss.Top, cards...), right)
	var position string
	if c.Total > 0 {
		position = fmt.Sprintf("%d–%d of %d", c.Start+1, c.Start+len(c.Projects), c.Total)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading("My Projects"),
		row,
		styles.Muted.Render(position),
	)
}

func renderPublications(p *content.Portfolio, width int) string {
	lines := []string{heading("Publications")}
	for _, pub := range p.Publications {
		lines = append(lines,
			styles.CardTitle.Width(width).Render(icons.Glyph(icons.BookOpen)+" "+pub.Title),
			styles.Body.Width(width).Render(pub.Venue),
			styles.Muted.Render(fmt.Sprint(pub.Year)),
			styles.Link.Render("Read More "+icons.Glyph(icons.ExternalLink)+" "+pub.URL),
			"",
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderContact(p *content.Portfolio, width int) string {
	lines := []string{heading("Get in Touch")}
	for _, s := range p.Socials {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			styles.CardTitle.Render(fmt.Sprintf("%-2s", icons.Glyph(s.Icon))),
			styles.Body.Render(s.Label),
			styles.Link.Render(s.URL),
		))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderNav draws the top bar with the active section highlighted.
func renderNav(initials string, items []page.NavItem, width int) string {
	parts := []string{styles.Brand.Render(initials)}
	for i, it := range items {
		label := fmt.Sprintf("%d %s", i+1, it.Label)
		if it.Active {
			parts = append(parts, styles.NavActive.Render(label))
		} else {
			parts = append(parts, styles.NavItem.Render(label))
		}
	}
	return styles.NavBar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// renderMenu draws the overlay listing with the cursor on one entry.
func renderMenu(items []page.NavItem, cursor int) string {
	lines := make([]string, len(items))
	for i, it := range items {
		label := it.Label
		if it.Active {
			label += " •"
		}
		if i == cursor {
			lines[i] = styles.MenuCursor.Render("› " + label)
		} else {
			lines[i] = styles.Muted.Render("  " + label)
		}
	}
	return styles.Menu.Render(strings.Join(lines, "\n\n"))
}

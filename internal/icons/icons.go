package icons

// Icon is a symbol selector attached to display content.
type Icon string

const (
	Layout       Icon = "layout"
	Code         Icon = "code"
	Database     Icon = "database"
	Server       Icon = "server"
	Cloud        Icon = "cloud"
	BookOpen     Icon = "book-open"
	FileText     Icon = "file-text"
	GitHub       Icon = "github"
	LinkedIn     Icon = "linkedin"
	Mail         Icon = "mail"
	ExternalLink Icon = "external-link"
	ChevronLeft  Icon = "chevron-left"
	ChevronRight Icon = "chevron-right"
	Menu         Icon = "menu"
)

// Definition describes an icon entry.
type Definition struct {
	ID     Icon
	Lucide string
	Glyph  string
}

var catalog = []Definition{
	{ID: Layout, Lucide: "layout", Glyph: "▦"},
	{ID: Code, Lucide: "code", Glyph: "</>"},
	{ID: Database, Lucide: "database", Glyph: "≣"},
	{ID: Server, Lucide: "server", Glyph: "▤"},
	{ID: Cloud, Lucide: "cloud", Glyph: "☁"},
	{ID: BookOpen, Lucide: "book-open", Glyph: "❏"},
	{ID: FileText, Lucide: "file-text", Glyph: "🗎"},
	{ID: GitHub, Lucide: "github", Glyph: "GH"},
	{ID: LinkedIn, Lucide: "linkedin", Glyph: "in"},
	{ID: Mail, Lucide: "mail", Glyph: "@"},
	{ID: ExternalLink, Lucide: "external-link", Glyph: "↗"},
	{ID: ChevronLeft, Lucide: "chevron-left", Glyph: "‹"},
	{ID: ChevronRight, Lucide: "chevron-right", Glyph: "›"},
	{ID: Menu, Lucide: "menu", Glyph: "≡"},
}

var byID = func() map[Icon]Definition {
	m := make(map[Icon]Definition, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def
	}
	return m
}()

// Catalog returns a copy of the icon definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Valid reports whether i is a known tag.
func (i Icon) Valid() bool {
	_, ok := byID[i]
	return ok
}

// LucideName returns the Lucide icon name for a tag.
func LucideName(i Icon) (string, bool) {
	def, ok := byID[i]
	return def.Lucide, ok
}

// LucideNameOrDefault provides a stable Lucide name even for unknown tags.
func LucideNameOrDefault(i Icon) string {
	if name, ok := LucideName(i); ok {
		return name
	}
	return "sparkle"
}

// Glyph returns the terminal glyph for a tag, "•" when unknown.
func Glyph(i Icon) string {
	if def, ok := byID[i]; ok {
		return def.Glyph
	}
	return "•"
}

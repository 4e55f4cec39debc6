package view

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is the status message of a screen. A blocking notice is shown as a modal
// the user has to dismiss; the others are inline banners.
type Notice struct {
	Kind     NoticeKind
	Text     string
	Blocking bool
}

func Success(text string) *Notice { return &Notice{Kind: NoticeSuccess, Text: text} }
func Failure(text string) *Notice { return &Notice{Kind: NoticeError, Text: text} }
func Info(text string) *Notice    { return &Notice{Kind: NoticeInfo, Text: text} }

// AsBlocking returns a blocking copy of n. Nil stays nil.
func (n *Notice) AsBlocking() *Notice {
	if n == nil {
		return nil
	}
	c := *n
	c.Blocking = true
	return &c
}

type Stat struct {
	Label string
	Value int
}

type Section struct {
	Title  string
	Forms  []FormView
	Tables []TableView
}

type NavItem struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

type Page struct {
	Key      string
	Icon     string
	Title    string
	Subtitle string
	Notice   *Notice
	// Warnings report failed list-fetches, apart from the notice of the last action.
	Warnings []string
	Stats    []Stat
	Sections []Section
	Nav      []NavItem
}

var screens = []NavItem{
	{Key: "avis", Label: "💬 Avis", Href: "/avis"},
	{Key: "events", Label: "🚨 Événements", Href: "/events"},
	{Key: "infrastructures", Label: "🏗️ Infrastructures", Href: "/infrastructures"},
	{Key: "recharge", Label: "⚡ Recharge", Href: "/recharge"},
	{Key: "tickets", Label: "🎟️ Tickets", Href: "/tickets"},
	{Key: "trajets", Label: "🛣️ Trajets", Href: "/trajets"},
	{Key: "transports", Label: "🚆 Réseaux", Href: "/transports"},
}

// Navigation lists every screen, marking active as the current one.
func Navigation(active string) []NavItem {
	nav := make([]NavItem, len(screens))
	for i, item := range screens {
		item.Active = item.Key == active
		nav[i] = item
	}
	return nav
}

// NewPage starts a page for screen key with the shared navigation.
func NewPage(key, icon, title, subtitle string) *Page {
	return &Page{
		Key:      key,
		Icon:     icon,
		Title:    title,
		Subtitle: subtitle,
		Nav:      Navigation(key),
	}
}

func (p *Page) AddSection(title string, forms []FormView, tables ...TableView) *Page {
	p.Sections = append(p.Sections, Section{Title: title, Forms: forms, Tables: tables})
	return p
}

func (p *Page) Warn(text string) {
	p.Warnings = append(p.Warnings, text)
}

// PageKey labels the page in metrics.
func (p *Page) PageKey() string {
	if p.Key == "" {
		return "home"
	}
	return p.Key
}

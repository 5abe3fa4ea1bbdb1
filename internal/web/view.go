package web

import (
	"encoding/json"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yetobasi/homepage/internal/carousel"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/markup"
	"github.com/yetobasi/homepage/internal/scroll"
	"github.com/yetobasi/homepage/internal/scrollspy"
	"github.com/yetobasi/homepage/internal/theme"
)

// Section ids in page order. Sections without entries are left out,
// except about and projects.
const (
	SectionAbout        = "aboutme"
	SectionHonors       = "etc"
	SectionPublications = "publications"
	SectionProjects     = "projects"
	SectionExperience   = "experience"
	SectionServices     = "services"
	SectionPhotos       = "photos"
)

// copyIndicatorTTL is how long the "Email Copied!" badge stays up, in ms.
const copyIndicatorTTL = 2000

var navSections = []string{"about me", "projects"}

// Sections lists the ids of the sections rendered for site, in page order.
func Sections(site content.Site) []string {
	ids := []string{SectionAbout}
	if len(site.Honors) > 0 {
		ids = append(ids, SectionHonors)
	}
	if len(site.Publications) > 0 {
		ids = append(ids, SectionPublications)
	}
	ids = append(ids, SectionProjects)
	if len(site.Experience) > 0 {
		ids = append(ids, SectionExperience)
	}
	if len(site.Services) > 0 {
		ids = append(ids, SectionServices)
	}
	if len(site.Photos) > 0 {
		ids = append(ids, SectionPhotos)
	}
	return ids
}

// renderMarkup turns markup-capable prose into HTML links colored from the
// palette, using fallback when the markup names no known color. Links with
// an unsupported URL scheme keep only their display text.
func renderMarkup(s, fallback string) template.HTML {
	var b strings.Builder
	for _, seg := range markup.Parse(s) {
		switch v := seg.(type) {
		case markup.Text:
			b.WriteString(template.HTMLEscapeString(v.Value))
		case markup.Link:
			if !linkable(v.URL) {
				b.WriteString(template.HTMLEscapeString(v.Display))
				continue
			}
			c := theme.Resolve(v.Color, fallback)
			b.WriteString(`<a class="inline-link" target="_blank" rel="noopener noreferrer" href="`)
			b.WriteString(template.HTMLEscapeString(v.URL))
			b.WriteString(`" style="--link:`)
			b.WriteString(template.HTMLEscapeString(c.Default))
			b.WriteString(`;--link-hover:`)
			b.WriteString(template.HTMLEscapeString(c.Hover))
			b.WriteString(`">`)
			b.WriteString(template.HTMLEscapeString(v.Display))
			b.WriteString(`</a>`)
		}
	}
	return template.HTML(b.String())
}

var linkSchemes = map[string]bool{"": true, "http": true, "https": true, "mailto": true}

// linkable reports whether raw is a relative or http(s)/mailto URL.
// Anything else is rendered as plain text.
func linkable(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && linkSchemes[strings.ToLower(u.Scheme)]
}

type navButton struct {
	ID     string
	Label  string
	Active bool
}

type navView struct {
	Session string
	Buttons []navButton
}

func buildNav(sessionID, active string) navView {
	v := navView{Session: sessionID}
	for _, s := range navSections {
		id := strings.ReplaceAll(s, " ", "")
		v.Buttons = append(v.Buttons, navButton{
			ID:     id,
			Label:  strings.ToUpper(s[:1]) + s[1:],
			Active: id == active,
		})
	}
	return v
}

type newsView struct {
	Date        string
	Title       string
	Description template.HTML
}

type publicationView struct {
	content.Publication
	Authors []content.Author
}

type filterButton struct {
	Value  content.Filter
	Label  string
	Active bool
}

type projectView struct {
	content.Project
	Description template.HTML
	Period      string
	Completed   bool
}

type projectsView struct {
	Filter  content.Filter
	Filters []filterButton
	Items   []projectView
}

func buildProjects(projects []content.Project, f content.Filter) projectsView {
	v := projectsView{Filter: f}
	// a Caser keeps state between calls
	title := cases.Title(language.English)
	for _, opt := range content.Filters {
		v.Filters = append(v.Filters, filterButton{
			Value:  opt,
			Label:  title.String(string(opt)),
			Active: opt == f,
		})
	}
	for _, p := range content.FilterProjects(projects, f) {
		v.Items = append(v.Items, projectView{
			Project:     p,
			Description: renderMarkup(p.Description, theme.FallbackProjects),
			Period:      p.Period(),
			Completed:   p.Status == content.StatusCompleted,
		})
	}
	return v
}

type experienceEntryView struct {
	Year        string
	Title       string
	Institution template.HTML
}

type experienceView struct {
	Role    string
	Entries []experienceEntryView
}

type thumbView struct {
	Index  int
	Src    string
	Label  string
	Active bool
}

type slideView struct {
	Session  string
	Index    int
	Len      int
	Paused   bool
	Photo    content.Photo
	Alt      string
	Thumbs   []thumbView
	Interval int64
}

// buildSlide renders the carousel state. Thumbnails run newest first, the
// reverse of the photo list.
func buildSlide(sessionID string, photos []content.Photo, st carousel.State, intervalMS int64) slideView {
	v := slideView{
		Session:  sessionID,
		Index:    st.Index,
		Len:      len(photos),
		Paused:   st.Paused,
		Photo:    photos[st.Index],
		Alt:      "Photo " + strconv.Itoa(len(photos)-st.Index),
		Interval: intervalMS,
	}
	for pos := 0; pos < len(photos); pos++ {
		i := len(photos) - 1 - pos
		v.Thumbs = append(v.Thumbs, thumbView{
			Index:  i,
			Src:    photos[i].Src,
			Label:  "Thumbnail " + strconv.Itoa(len(photos)-pos),
			Active: i == st.Index,
		})
	}
	return v
}

type spyView struct {
	RootMargin string
	Threshold  float64
	Sections   string
}

type scrollView struct {
	HeaderHeight int
	Gap          int
	DurationMS   int64
}

type pageView struct {
	Session      string
	Profile      content.Profile
	About        template.HTML
	Interests    []string
	Nav          navView
	News         []newsView
	Honors       []content.Honor
	Publications []publicationView
	Projects     projectsView
	Experience   []experienceView
	Services     []content.ServiceGroup
	Slide        *slideView
	Footer       string
	Spy          spyView
	Scroll       scrollView
	CopyTTL      int
}

func buildPage(site content.Site, sessionID string, spy *scrollspy.Observer, slide *slideView) pageView {
	sections, _ := json.Marshal(Sections(site))
	v := pageView{
		Session:   sessionID,
		Profile:   site.Profile,
		About:     renderMarkup(site.Profile.About, theme.FallbackAbout),
		Interests: site.Profile.Interests(),
		Nav:       buildNav(sessionID, spy.Active()),
		Honors:    site.Honors,
		Projects:  buildProjects(site.Projects.Current, content.FilterAll),
		Services:  site.Services,
		Slide:     slide,
		Footer:    site.Footer,
		Spy: spyView{
			RootMargin: spy.RootMargin(),
			Threshold:  spy.Threshold(),
			Sections:   string(sections),
		},
		Scroll: scrollView{
			HeaderHeight: theme.HeaderHeight,
			Gap:          theme.ScrollGap,
			DurationMS:   scroll.DefaultDuration.Milliseconds(),
		},
		CopyTTL: copyIndicatorTTL,
	}
	for _, n := range site.News {
		v.News = append(v.News, newsView{
			Date:        n.Date,
			Title:       n.Title,
			Description: renderMarkup(n.Description, theme.FallbackNews),
		})
	}
	for _, p := range site.Publications {
		v.Publications = append(v.Publications, publicationView{
			Publication: p,
			Authors:     p.AuthorList(site.Profile.Name),
		})
	}
	for _, g := range site.Experience {
		ev := experienceView{Role: g.Role}
		for _, e := range g.Entries {
			ev.Entries = append(ev.Entries, experienceEntryView{
				Year:        e.Year,
				Title:       e.Title,
				Institution: renderMarkup(e.Institution, theme.FallbackExperience),
			})
		}
		v.Experience = append(v.Experience, ev)
	}
	return v
}

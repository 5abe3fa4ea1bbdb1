// Package content holds the static tables the homepage is rendered from.
package content

// SocialLinks lists optional per-platform profile URLs.
type SocialLinks struct {
	GitHub       string `json:"github,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
	ResearchGate string `json:"researchGate,omitempty"`
	Scholar      string `json:"scholar,omitempty"`
}

type Education struct {
	Degree         string `json:"degree"`
	Department     string `json:"department"`
	DepartmentURL  string `json:"departmentUrl"`
	Institution    string `json:"institution"`
	InstitutionURL string `json:"institutionUrl"`
	Year           string `json:"year"`
}

// InterestGroup is one category of research interests.
type InterestGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Website struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Lab struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	URL      string `json:"url"`
	Advisor  string `json:"advisor"`
}

// Profile describes the site owner. About may embed link markup.
type Profile struct {
	Name           string          `json:"name"`
	NativeName     string          `json:"nativeName,omitempty"`
	Title          string          `json:"title"`
	Email          string          `json:"email"`
	Location       string          `json:"location"`
	Bio            string          `json:"bio"`
	Image          string          `json:"image"`
	SocialLinks    SocialLinks     `json:"socialLinks"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	About          string          `json:"about"`
	InterestGroups []InterestGroup `json:"interests"`
	RelatedWebsite Website         `json:"relatedWebsite"`
	Lab            Lab             `json:"lab"`
	CVURL          string          `json:"cvUrl"`
}

// Interests flattens the interest groups in declaration order.
func (p Profile) Interests() []string {
	var out []string
	for _, g := range p.InterestGroups {
		out = append(out, g.Items...)
	}
	return out
}

// NewsItem is a dated announcement. Description may embed link markup.
type NewsItem struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Honor struct {
	Year         string `json:"year"`
	Title        string `json:"title"`
	Organization string `json:"organization,omitempty"`
}

type Publication struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Venue   string   `json:"venue"`
	Year    string   `json:"year"`
	DOI     string   `json:"doi,omitempty"`
	Slides  string   `json:"slides,omitempty"`
	Poster  string   `json:"poster,omitempty"`
	Video   string   `json:"video,omitempty"`
	GitHub  string   `json:"github,omitempty"`
}

// Author is one rendered entry of a publication's author line.
type Author struct {
	Name      string
	Self      bool
	Separator string
}

// AuthorList returns the authors joined as "A, B and C", flagging self.
func (p Publication) AuthorList(self string) []Author {
	out := make([]Author, len(p.Authors))
	n := len(p.Authors)
	for i, name := range p.Authors {
		a := Author{Name: name, Self: name == self}
		switch {
		case i < n-2:
			a.Separator = ", "
		case i == n-2:
			a.Separator = " and "
		}
		out[i] = a
	}
	return out
}

// DOIURL returns the resolver URL for the publication's DOI.
func (p Publication) DOIURL() string {
	if p.DOI == "" {
		return ""
	}
	return "https://doi.org/" + p.DOI
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// Project is a research or engineering project. Description may embed
// link markup.
type Project struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Image        string       `json:"image,omitempty"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate,omitempty"`
	Role         string       `json:"role"`
	Technologies []string     `json:"technologies"`
	Status       Status       `json:"status"`
	Links        ProjectLinks `json:"links,omitempty"`
}

// Period formats the project's date range; an open range ends in "Present".
func (p Project) Period() string {
	end := p.EndDate
	if end == "" {
		end = "Present"
	}
	return p.StartDate + " - " + end
}

type Projects struct {
	Current []Project `json:"current"`
	Past    []Project `json:"past"`
}

// ExperienceEntry is one line of an experience group. Institution may
// embed link markup.
type ExperienceEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
}

type ExperienceGroup struct {
	Role    string            `json:"role"`
	Entries []ExperienceEntry `json:"experiences"`
}

type ServiceItem struct {
	Title string `json:"title"`
	Role  string `json:"role,omitempty"`
	Year  string `json:"year"`
}

type ServiceGroup struct {
	Category string        `json:"category"`
	Items    []ServiceItem `json:"items"`
}

// Photo is one carousel slide.
type Photo struct {
	Src     string `json:"src"`
	Comment string `json:"comment"`
}

// Site aggregates every table the page is composed from.
type Site struct {
	Profile      Profile
	News         []NewsItem
	Honors       []Honor
	Publications []Publication
	Projects     Projects
	Experience   []ExperienceGroup
	Services     []ServiceGroup
	Photos       []Photo
	Footer       string
}

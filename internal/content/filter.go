package content

import "strings"

// Filter selects which projects the projects section shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterOngoing   Filter = "ongoing"
	FilterCompleted Filter = "completed"
)

// Filters lists the filter buttons in display order.
var Filters = []Filter{FilterAll, FilterOngoing, FilterCompleted}

// ParseFilter maps a query value to a Filter. Anything unrecognised
// selects FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterOngoing:
		return FilterOngoing
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// FilterProjects keeps the projects matching f in their original order.
func FilterProjects(projects []Project, f Filter) []Project {
	if f == FilterAll || f == "" {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if string(p.Status) == string(f) {
			out = append(out, p)
		}
	}
	return out
}

package content

import "slices"

// Load returns the site tables. The returned value shares no slices with
// the package tables, so callers may reorder or trim freely.
func Load() Site {
	p := profile
	p.Education = slices.Clone(profile.Education)
	p.Skills = slices.Clone(profile.Skills)
	p.InterestGroups = make([]InterestGroup, len(profile.InterestGroups))
	for i, g := range profile.InterestGroups {
		p.InterestGroups[i] = InterestGroup{Category: g.Category, Items: slices.Clone(g.Items)}
	}

	exp := make([]ExperienceGroup, len(experience))
	for i, g := range experience {
		exp[i] = ExperienceGroup{Role: g.Role, Entries: slices.Clone(g.Entries)}
	}
	svc := make([]ServiceGroup, len(services))
	for i, g := range services {
		svc[i] = ServiceGroup{Category: g.Category, Items: slices.Clone(g.Items)}
	}

	return Site{
		Profile:      p,
		News:         slices.Clone(news),
		Honors:       slices.Clone(honors),
		Publications: slices.Clone(publications),
		Projects: Projects{
			Current: slices.Clone(projects.Current),
			Past:    slices.Clone(projects.Past),
		},
		Experience: exp,
		Services:   svc,
		Photos:     slices.Clone(photos),
		Footer:     Footer,
	}
}

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProjects(t *testing.T) {
	projects := []Project{
		{Title: "a", Status: StatusCompleted},
		{Title: "b", Status: StatusOngoing},
		{Title: "c", Status: StatusCompleted},
	}

	ongoing := FilterProjects(projects, FilterOngoing)
	require.Len(t, ongoing, 1)
	assert.Equal(t, "b", ongoing[0].Title)

	all := FilterProjects(projects, FilterAll)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, titles(all))

	completed := FilterProjects(projects, FilterCompleted)
	assert.Equal(t, []string{"a", "c"}, titles(completed))
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		"":           FilterAll,
		"all":        FilterAll,
		"Ongoing":    FilterOngoing,
		" completed": FilterCompleted,
		"archived":   FilterAll,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseFilter(in), "ParseFilter(%q)", in)
	}
}

func TestProjectPeriod(t *testing.T) {
	assert.Equal(t, "2023-02 - 2025-08", Project{StartDate: "2023-02", EndDate: "2025-08"}.Period())
	assert.Equal(t, "2025-03 - Present", Project{StartDate: "2025-03"}.Period())
}

func TestAuthorList(t *testing.T) {
	p := Publication{Authors: []string{"Kim", "Obasi", "Lee"}}
	got := p.AuthorList("Obasi")
	require.Len(t, got, 3)
	assert.Equal(t, Author{Name: "Kim", Separator: ", "}, got[0])
	assert.Equal(t, Author{Name: "Obasi", Self: true, Separator: " and "}, got[1])
	assert.Equal(t, Author{Name: "Lee"}, got[2])

	single := Publication{Authors: []string{"Obasi"}}.AuthorList("Obasi")
	assert.Equal(t, []Author{{Name: "Obasi", Self: true}}, single)
}

func TestDOIURL(t *testing.T) {
	assert.Empty(t, Publication{}.DOIURL())
	assert.Equal(t, "https://doi.org/10.1/x", Publication{DOI: "10.1/x"}.DOIURL())
}

func TestLoadIsIsolated(t *testing.T) {
	a := Load()
	require.NotEmpty(t, a.Photos)
	a.Photos[0].Comment = "changed"
	a.Profile.InterestGroups[0].Items[0] = "changed"

	b := Load()
	assert.NotEqual(t, "changed", b.Photos[0].Comment)
	assert.NotEqual(t, "changed", b.Profile.InterestGroups[0].Items[0])
}

func TestInterestsFlattenInOrder(t *testing.T) {
	p := Profile{InterestGroups: []InterestGroup{
		{Category: "AI/ML", Items: []string{"x", "y"}},
		{Category: "HCI", Items: []string{"z"}},
	}}
	assert.Equal(t, []string{"x", "y", "z"}, p.Interests())
}

func TestExperienceKeepsDuplicates(t *testing.T) {
	site := Load()
	seen := map[ExperienceEntry]int{}
	for _, g := range site.Experience {
		for _, e := range g.Entries {
			seen[e]++
		}
	}
	dup := 0
	for _, n := range seen {
		if n > 1 {
			dup++
		}
	}
	assert.Positive(t, dup, "entries shared between groups should be kept")
}

func titles(ps []Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

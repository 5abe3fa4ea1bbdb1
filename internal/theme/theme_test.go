package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, links["blue"], Resolve("blue", FallbackAbout))
	assert.Equal(t, links["social"], Resolve("", FallbackAbout))
	assert.Equal(t, links["green"], Resolve("chartreuse", FallbackProjects))
	assert.Equal(t, links["university"], Resolve("nope", FallbackExperience))
}

func TestFallbacksAreKeys(t *testing.T) {
	for _, k := range []string{FallbackAbout, FallbackNews, FallbackProjects, FallbackExperience} {
		assert.True(t, Has(k), k)
	}
}

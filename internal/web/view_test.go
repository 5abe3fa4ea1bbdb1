package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yetobasi/homepage/internal/carousel"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/theme"
)

func TestRenderMarkup(t *testing.T) {
	got := string(renderMarkup("See [lab](https://x.org/?a=1&b=2, color=red) & <more>", theme.FallbackNews))
	assert.Equal(t,
		`See <a class="inline-link" target="_blank" rel="noopener noreferrer" href="https://x.org/?a=1&amp;b=2" style="--link:#dc2626;--link-hover:#b91c1c">lab</a> &amp; &lt;more&gt;`,
		got)

	got = string(renderMarkup("[x](https://y.org, color=teal)", theme.FallbackProjects))
	assert.Contains(t, got, "--link:#059669", "unknown colors use the fallback")

	assert.Equal(t, "plain", string(renderMarkup("plain", theme.FallbackAbout)))
}

func TestRenderMarkupRejectsUnsafeSchemes(t *testing.T) {
	for _, u := range []string{"javascript:void", "JavaScript:void", "data:text/html,hi", "vbscript:x"} {
		got := string(renderMarkup("[click]("+u+")", theme.FallbackNews))
		assert.Equal(t, "click", got, "url %q", u)
	}
	for _, u := range []string{"https://x.org", "http://x.org", "mailto:a@b.kr", "/files/cv.pdf"} {
		got := string(renderMarkup("[ok]("+u+")", theme.FallbackNews))
		assert.Contains(t, got, `href="`+u+`"`, "url %q", u)
	}
}

func TestSections(t *testing.T) {
	site := content.Load()
	assert.Equal(t, []string{"aboutme", "etc", "projects", "experience", "photos"}, Sections(site))

	site.Publications = []content.Publication{{Title: "p"}}
	site.Services = []content.ServiceGroup{{Category: "Reviewer"}}
	assert.Equal(t,
		[]string{"aboutme", "etc", "publications", "projects", "experience", "services", "photos"},
		Sections(site))
}

func TestBuildNav(t *testing.T) {
	nav := buildNav("s1", "projects")
	require.Len(t, nav.Buttons, 2)
	assert.Equal(t, navButton{ID: "aboutme", Label: "About me"}, nav.Buttons[0])
	assert.Equal(t, navButton{ID: "projects", Label: "Projects", Active: true}, nav.Buttons[1])
}

func TestBuildSlideThumbnailsNewestFirst(t *testing.T) {
	photos := []content.Photo{{Src: "a"}, {Src: "b"}, {Src: "c"}}
	v := buildSlide("s", photos, carousel.State{Index: 1, Len: 3}, 5000)

	assert.Equal(t, "b", v.Photo.Src)
	assert.Equal(t, "Photo 2", v.Alt)
	require.Len(t, v.Thumbs, 3)
	assert.Equal(t, thumbView{Index: 2, Src: "c", Label: "Thumbnail 3"}, v.Thumbs[0])
	assert.Equal(t, thumbView{Index: 1, Src: "b", Label: "Thumbnail 2", Active: true}, v.Thumbs[1])
	assert.Equal(t, thumbView{Index: 0, Src: "a", Label: "Thumbnail 1"}, v.Thumbs[2])
}

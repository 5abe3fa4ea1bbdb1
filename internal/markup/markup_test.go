package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNoMarkup(t *testing.T) {
	for _, s := range []string{"", "plain text", "brackets [only] here", "parens (only)"} {
		segs := Parse(s)
		require.Len(t, segs, 1, "Parse(%q)", s)
		assert.Equal(t, Text{Value: s}, segs[0])
	}
}

func TestParseSingleLink(t *testing.T) {
	segs := Parse("See [Lab](https://x.org) for details")
	assert.Equal(t, []Segment{
		Text{Value: "See "},
		Link{Display: "Lab", URL: "https://x.org"},
		Text{Value: " for details"},
	}, segs)
}

func TestParseColor(t *testing.T) {
	segs := Parse("at [KAIST ICLab](https://ic.kaist.ac.kr/, color=blue).")
	assert.Equal(t, []Segment{
		Text{Value: "at "},
		Link{Display: "KAIST ICLab", URL: "https://ic.kaist.ac.kr/", Color: "blue"},
		Text{Value: "."},
	}, segs)

	segs = Parse("[a](u,color=green)")
	assert.Equal(t, Link{Display: "a", URL: "u", Color: "green"}, segs[1])
}

func TestParseAdjacentLinksKeepEmptyText(t *testing.T) {
	segs := Parse("[a](1)[b](2)")
	assert.Equal(t, []Segment{
		Text{},
		Link{Display: "a", URL: "1"},
		Text{},
		Link{Display: "b", URL: "2"},
		Text{},
	}, segs)
}

func TestParseMalformedPassesThrough(t *testing.T) {
	for _, s := range []string{
		"broken [link(https://x.org)",
		"broken [link] (https://x.org)",
		"unterminated [link](https://x.org",
	} {
		segs := Parse(s)
		require.Len(t, segs, 1, "Parse(%q)", s)
		assert.Equal(t, s, Plain(segs))
	}
}

func TestParseCommaWithoutColorStaysInURL(t *testing.T) {
	segs := Parse("[a](u,v)")
	assert.Equal(t, Link{Display: "a", URL: "u,v"}, segs[1])
}

func TestParseCountsAndReconstruction(t *testing.T) {
	tests := []struct {
		in    string
		links int
		plain string
	}{
		{"x [a](1) y [b](2, color=red) z", 2, "x a y b z"},
		{"[only](u)", 1, "only"},
		{"no links", 0, "no links"},
		{"a [b](c) [d](e) [f](g)", 3, "a b d f"},
	}
	for _, tt := range tests {
		segs := Parse(tt.in)
		links := Links(segs)
		assert.Len(t, links, tt.links, tt.in)
		assert.Len(t, segs, 2*tt.links+1, tt.in)
		assert.Equal(t, tt.plain, Plain(segs), tt.in)
	}
}

func TestParseSegmentsAlternate(t *testing.T) {
	segs := Parse(strings.Repeat("t [l](u) ", 5))
	for i, seg := range segs {
		if i%2 == 0 {
			assert.IsType(t, Text{}, seg, "segment %d", i)
		} else {
			assert.IsType(t, Link{}, seg, "segment %d", i)
		}
	}
}

// Package markup tokenizes the inline link syntax used in profile, news,
// project and experience prose:
//
//	[display](url)
//	[display](url, color=name)
//
// Anything that does not match is passed through as text.
package markup

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)(?:,\s*color=(\w+))?\)`)

// Segment is either a Text or a Link.
type Segment interface {
	segment()
}

// Text is a literal run of the input.
type Text struct {
	Value string
}

// Link is a parsed link. Color is empty when the markup names none.
type Link struct {
	Display string
	URL     string
	Color   string
}

func (Text) segment() {}
func (Link) segment() {}

// Parse splits s into alternating text and link segments. A string with k
// links yields k links and k+1 text segments, some possibly empty.
func Parse(s string) []Segment {
	matches := linkPattern.FindAllStringSubmatchIndex(s, -1)
	segs := make([]Segment, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		segs = append(segs, Text{Value: s[pos:m[0]]})
		link := Link{
			Display: s[m[2]:m[3]],
			URL:     s[m[4]:m[5]],
		}
		if m[6] >= 0 {
			link.Color = s[m[6]:m[7]]
		}
		segs = append(segs, link)
		pos = m[1]
	}
	return append(segs, Text{Value: s[pos:]})
}

// Plain renders segments as text, replacing each link by its display text.
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		switch v := seg.(type) {
		case Text:
			b.WriteString(v.Value)
		case Link:
			b.WriteString(v.Display)
		}
	}
	return b.String()
}

// Links returns only the link segments of segs.
func Links(segs []Segment) []Link {
	var out []Link
	for _, seg := range segs {
		if l, ok := seg.(Link); ok {
			out = append(out, l)
		}
	}
	return out
}

package report

import (
	"regexp"
	"strings"
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// richSegment is one run of paragraph text with a single styling.
type richSegment struct {
	text string
	bold bool
}

// splitBold separates **bold** spans from plain text so document backends
// can emit styled runs. Unmatched markers stay literal.
func splitBold(s string) []richSegment {
	parts := reBold.Split(s, -1)
	matches := reBold.FindAllStringSubmatch(s, -1)

	var segs []richSegment
	for i, part := range parts {
		if part != "" {
			segs = append(segs, richSegment{text: part})
		}
		if i < len(matches) {
			segs = append(segs, richSegment{text: matches[i][1], bold: true})
		}
	}
	return segs
}

// stripInlineBold drops bold markers from heading text, which is already
// rendered bold.
func stripInlineBold(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

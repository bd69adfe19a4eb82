package report

import "strings"

// BlockKind discriminates the element types a summary document is built
// from.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
	KindSpacer
)

// Block is one renderable element of the converted document. Level is set
// for headings, Text for headings and paragraphs, Items for lists.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
	Items []string
}

// ParseBlocks converts summary markdown into its block sequence with a
// line-oriented scan. Lines are trimmed before classification, so indented
// sub-bullets join the enclosing list. Consecutive list items merge into a
// single list block; any other line class flushes the open list first.
// Blank lines always contribute a spacer. The scan cannot fail.
func ParseBlocks(md string) []Block {
	var blocks []Block
	var items []string

	flush := func() {
		if len(items) > 0 {
			blocks = append(blocks, Block{Kind: KindList, Items: items})
			items = nil
		}
	}

	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			flush()
			blocks = append(blocks, Block{Kind: KindSpacer})
		case strings.HasPrefix(line, "# "):
			flush()
			blocks = append(blocks, Block{Kind: KindHeading, Level: 1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			flush()
			blocks = append(blocks, Block{Kind: KindHeading, Level: 2, Text: line[3:]})
		case strings.HasPrefix(line, "### "):
			flush()
			blocks = append(blocks, Block{Kind: KindHeading, Level: 3, Text: line[4:]})
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			items = append(items, line[2:])
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			flush()
			blocks = append(blocks, Block{Kind: KindParagraph, Text: strings.Trim(line, "*")})
		default:
			flush()
			blocks = append(blocks, Block{Kind: KindParagraph, Text: line})
		}
	}
	flush()

	return blocks
}

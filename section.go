package wikisect

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultSentinel is the heading text that marks the end of article content
// on the source site. Section discovery stops when it is reached.
const DefaultSentinel = "Navigation menu"

// HeadingNames lists the tag names treated as section headings, h1 through h8.
var HeadingNames = []string{"h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8"}

// HeadingLevel returns the level of a heading tag name ("h3" -> 3).
// Returns false for anything that is not h1..h8.
func HeadingLevel(name string) (int, bool) {
	if len(name) != 2 || name[0] != 'h' {
		return 0, false
	}
	level := int(name[1] - '0')
	if level < 1 || level > 8 {
		return 0, false
	}
	return level, true
}

// IsHeading reports whether name is one of HeadingNames.
func IsHeading(name string) bool {
	_, ok := HeadingLevel(name)
	return ok
}

// SectionBounds pairs a heading with the nodes that belong to it.
type SectionBounds struct {
	Heading Node
	Title   string
	Level   int

	// Content holds the heading's following siblings up to, not including,
	// the next heading of any level.
	Content []Node
}

// FindSections scans doc for headings in document order and collects the
// content that follows each one. Scanning stops entirely at the first
// heading whose text equals sentinel; no section is produced for it or for
// any heading after it. An empty sentinel disables the check.
// A document without headings yields no sections.
func FindSections(doc Document, sentinel string) []SectionBounds {
	var sections []SectionBounds
	for _, heading := range doc.Descendants(HeadingNames...) {
		title := strings.TrimSpace(heading.Text())
		if sentinel != "" && title == sentinel {
			break
		}

		level, _ := HeadingLevel(heading.Name())
		sections = append(sections, SectionBounds{
			Heading: heading,
			Title:   title,
			Level:   level,
			Content: sectionContent(heading),
		})
	}
	return sections
}

func sectionContent(heading Node) []Node {
	var content []Node
	for _, sib := range heading.FollowingSiblings() {
		if IsHeading(sib.Name()) {
			break
		}
		content = append(content, sib)
	}
	return content
}

// assignAnchors returns the fragment ids the Markdown report's table of
// contents links to. Repeated titles get -1, -2, ... suffixes, the way
// GitHub numbers repeated heading ids.
func assignAnchors(titles []string) []string {
	anchors := make([]string, len(titles))
	anchorCounts := make(map[string]int)

	for i, title := range titles {
		baseAnchor := generateAnchor(title)

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}
		anchors[i] = anchor
	}

	return anchors
}

// generateAnchor slugs a title in the style of GitHub heading ids: letters
// and digits are lowercased and kept, runs of spaces and hyphens become a
// single hyphen, and everything else is dropped.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

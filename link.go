package wikisect

import (
	"iter"
	"strconv"
	"strings"
)

// DefaultBaseURL is the site root that relative hrefs are resolved against.
const DefaultBaseURL = "https://en.wikipedia.org"

// SyntheticKeyPrefix prefixes the keys generated for links without visible text.
const SyntheticKeyPrefix = "unnamed_link_"

// Link is a hyperlink found in a section, keyed by its visible text.
type Link struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// LinkBoundaryNames are the element names the link extractor walks: anchors
// plus the headings that end a section.
var LinkBoundaryNames = append([]string{"a"}, HeadingNames...)

// ExtractLinks collects anchors from nodes, a document-order stream that
// starts after a section heading, and stops pulling at the first heading.
//
// Anchors without visible text get the key unnamed_link_<n>, where n counts
// from 1 within this call. When two anchors share a key the later URL wins
// and the key keeps its first position.
func ExtractLinks(nodes iter.Seq[Node], baseURL string) []Link {
	index := make(map[string]int)
	var links []Link
	unnamed := 0

	for node := range nodes {
		name := node.Name()
		if IsHeading(name) {
			break
		}
		if name != "a" {
			continue
		}

		href, ok := node.Attr("href")
		url := ResolveHref(baseURL, href, ok)

		key := strings.TrimSpace(node.Text())
		if key == "" {
			unnamed++
			key = SyntheticKeyPrefix + strconv.Itoa(unnamed)
		}

		if i, seen := index[key]; seen {
			links[i].URL = url
			continue
		}
		index[key] = len(links)
		links = append(links, Link{Key: key, URL: url})
	}

	return links
}

// ResolveHref turns an anchor's href into an absolute URL. A missing href
// resolves to an empty string, an https URL is kept as is, and anything else
// is treated as a path under baseURL.
func ResolveHref(baseURL, href string, present bool) string {
	if !present {
		return ""
	}
	if strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(baseURL, "/") + href
}

package wikisect

import (
	"sort"
	"strings"
)

// WordCount is a word and the number of times it occurs in a section.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// RankWords splits texts on whitespace, normalizes every token, and returns
// the surviving words ordered by descending count. Words with equal counts
// keep the order in which they were first seen.
func RankWords(texts []string, n *Normalizer) []WordCount {
	index := make(map[string]int)
	var counts []WordCount

	for _, text := range texts {
		for _, token := range strings.Fields(text) {
			word, ok := n.Normalize(token)
			if !ok {
				continue
			}
			if i, seen := index[word]; seen {
				counts[i].Count++
				continue
			}
			index[word] = len(counts)
			counts = append(counts, WordCount{Word: word, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Rank ranks the words found in the text of content.
func Rank(content []Node, n *Normalizer) []WordCount {
	texts := make([]string, 0, len(content))
	for _, node := range content {
		texts = append(texts, node.Text())
	}
	return RankWords(texts, n)
}

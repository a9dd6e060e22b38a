package history

import (
	"github.com/bstn-hfmn/rustman/internal/types"
	"github.com/sahilm/fuzzy"
)

type entrySource []types.HistoryEntry

func (s entrySource) String(i int) string { return s[i].Method + " " + s[i].URL }
func (s entrySource) Len() int            { return len(s) }

// Filter ranks entries by fuzzy match of query against method and URL.
// An empty query returns entries unchanged.
func Filter(entries []types.HistoryEntry, query string) []types.HistoryEntry {
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))
	result := make([]types.HistoryEntry, 0, len(matches))
	for _, match := range matches {
		result = append(result, entries[match.Index])
	}
	return result
}

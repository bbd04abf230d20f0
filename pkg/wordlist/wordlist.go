/*
Package wordlist maintains a list of words that sorts itself into ascending
collation order as entries are added.

The ordering rule comes from pkg/collation and is fixed at construction.
Ordering is collation based while exact matching is literal, so entries that
collate equal ("resume", "résumé") can coexist and still be told apart.
Callers are expected to normalize input (NFC, trimmed) before it reaches the
list; the list does not normalize on its own.
*/
package wordlist

import (
	"slices"
	"sort"
	"strings"

	"github.com/bastiangx/wordsort/pkg/collation"
)

// List keeps its entries sorted under the rule given to New.
// Not safe for concurrent use; the callers here are single threaded.
type List struct {
	words []string
	rule  collation.Collation
}

// New returns an empty list ordered by rule.
func New(rule collation.Collation) *List {
	return &List{rule: rule}
}

// InsertPosition finds where word belongs: the leftmost index whose entry
// does not sort before word. Lower bound binary search, O(log n).
func (l *List) InsertPosition(word string) int {
	low, high := 0, len(l.words)
	for low < high {
		mid := (low + high) / 2
		if l.rule.Compare(l.words[mid], word) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// Insert splices word in at its sorted position.
func (l *List) Insert(word string) {
	i := l.InsertPosition(word)
	l.words = append(l.words, "")
	copy(l.words[i+1:], l.words[i:])
	l.words[i] = word
}

// Search finds word by binary search and returns its index, or -1 when there
// is no exact match. The collator ignores case and accents, so a hit is
// confirmed with literal equality before it counts.
//
// Known limitation, kept on purpose: when the midpoint collates equal to word
// but differs literally, the search stops and reports a miss even though a
// literal match could sit elsewhere in that equal run. Callers treat -1 as
// the cue to fall back to ClosestMatch.
func (l *List) Search(word string) int {
	low, high := 0, len(l.words)-1
	for low <= high {
		mid := (low + high) / 2
		cmp := l.rule.Compare(l.words[mid], word)
		switch {
		case cmp < 0:
			low = mid + 1
		case cmp > 0:
			high = mid - 1
		default:
			if l.words[mid] == word {
				return mid
			}
			return -1
		}
	}
	return -1
}

// ClosestMatch returns the nearest entry to word, preferring the first entry
// not smaller than the query over the largest entry below it. In completion
// use the upper neighbor is usually the word being typed. Reports false only
// when the list is empty.
func (l *List) ClosestMatch(word string) (string, bool) {
	if len(l.words) == 0 {
		return "", false
	}
	low, high := 0, len(l.words)-1
	bestLower, bestUpper := -1, -1
	for low <= high {
		mid := (low + high) / 2
		cmp := l.rule.Compare(l.words[mid], word)
		switch {
		case cmp < 0:
			bestLower = mid
			low = mid + 1
		case cmp > 0:
			bestUpper = mid
			high = mid - 1
		default:
			return l.words[mid], true
		}
	}
	if bestUpper != -1 {
		return l.words[bestUpper], true
	}
	return l.words[bestLower], true
}

// PrefixMatches returns every entry whose literal text starts with prefix.
// The list's collation order need not group literal prefixes together, so
// this is a full scan. Results come back shortest first, collation order
// within a length, which fronts the more plausible completions. An empty
// prefix matches nothing.
func (l *List) PrefixMatches(prefix string) []string {
	matches := []string{}
	if prefix == "" {
		return matches
	}
	for _, w := range l.words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return l.rule.Compare(matches[i], matches[j]) < 0
	})
	return matches
}

// Contains reports whether Search finds word, and inherits its
// literal-equality caveat.
func (l *List) Contains(word string) bool {
	return l.Search(word) >= 0
}

// At returns the entry at index i.
func (l *List) At(i int) string { return l.words[i] }

// Len returns the number of entries.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the entries in their current order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Clear empties the list. The ordering rule stays.
func (l *List) Clear() {
	l.words = l.words[:0]
}

// Equal reports whether both lists hold the same entries in the same order.
// The ordering rule is not part of list identity.
func (l *List) Equal(other *List) bool {
	if other == nil {
		return false
	}
	return slices.Equal(l.words, other.words)
}

// Collation returns the ordering rule the list was built with.
func (l *List) Collation() collation.Collation { return l.rule }

func (l *List) String() string {
	return "[" + strings.Join(l.words, " ") + "]"
}

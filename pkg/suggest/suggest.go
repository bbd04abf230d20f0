/*
Package suggest keeps a live prefix index over the word list for
as-you-type completion.

Lookups walk a patricia trie instead of scanning the list, which keeps
per-keystroke suggestions cheap. Keys are case folded so matching is case
insensitive, while each key remembers the literal spellings behind it.
*/
package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/wordsort/pkg/collation"
)

// Completer indexes words by folded text. Entries that collate equal but
// differ literally coexist under one key.
type Completer struct {
	trie *patricia.Trie
	rule collation.Collation
	size int
}

// NewCompleter returns an empty index ordered by rule.
func NewCompleter(rule collation.Collation) *Completer {
	return &Completer{
		trie: patricia.NewTrie(),
		rule: rule,
	}
}

// Index adds one word to the index.
func (c *Completer) Index(word string) {
	key := patricia.Prefix(strings.ToLower(word))
	if item := c.trie.Get(key); item != nil {
		c.trie.Set(key, append(item.([]string), word))
	} else {
		c.trie.Insert(key, []string{word})
	}
	c.size++
}

// Forget removes one occurrence of word. Unknown words are a no-op.
func (c *Completer) Forget(word string) {
	key := patricia.Prefix(strings.ToLower(word))
	item := c.trie.Get(key)
	if item == nil {
		return
	}
	words := item.([]string)
	for i, w := range words {
		if w == word {
			words = append(words[:i], words[i+1:]...)
			c.size--
			break
		}
	}
	if len(words) == 0 {
		c.trie.Delete(key)
		return
	}
	c.trie.Set(key, words)
}

// Reset drops the whole index.
func (c *Completer) Reset() {
	c.trie = patricia.NewTrie()
	c.size = 0
}

// Len returns the number of indexed words.
func (c *Completer) Len() int { return c.size }

// Suggest returns up to limit completions for prefix, shortest first and
// collation order within a length. Matching is case insensitive on the
// folded key; returned words keep their original spelling. A limit of zero
// or less means no limit. An empty prefix suggests nothing.
func (c *Completer) Suggest(prefix string, limit int) []string {
	if prefix == "" {
		return nil
	}
	folded := strings.ToLower(prefix)

	var out []string
	err := c.trie.VisitSubtree(patricia.Prefix(folded), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, item.([]string)...)
		return nil
	})
	if err != nil {
		log.Errorf("visiting trie subtree: %v", err)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return c.rule.Compare(out[i], out[j]) < 0
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

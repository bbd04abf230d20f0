package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordsort/pkg/collation"
)

func newCompleter(words ...string) *Completer {
	c := NewCompleter(collation.Default())
	for _, w := range words {
		c.Index(w)
	}
	return c
}

func TestSuggestOrdering(t *testing.T) {
	c := newCompleter("banana", "bandana", "band", "bank", "cherry")

	// Shortest completions first, collation order within a length.
	assert.Equal(t, []string{"band", "bank", "banana", "bandana"}, c.Suggest("ban", 0))
}

func TestSuggestLimit(t *testing.T) {
	c := newCompleter("banana", "bandana", "band", "bank")

	got := c.Suggest("ban", 2)
	assert.Equal(t, []string{"band", "bank"}, got)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	c := newCompleter("Banana", "band")

	got := c.Suggest("BAN", 0)
	require.Len(t, got, 2)
	// Original spelling is preserved in results.
	assert.Contains(t, got, "Banana")
	assert.Contains(t, got, "band")
}

func TestSuggestEmptyPrefix(t *testing.T) {
	c := newCompleter("banana")
	assert.Empty(t, c.Suggest("", 10))
}

func TestSuggestNoMatch(t *testing.T) {
	c := newCompleter("banana")
	assert.Empty(t, c.Suggest("zzz", 10))
}

func TestLiteralVariantsCoexist(t *testing.T) {
	c := newCompleter("resume", "Resume")
	assert.Equal(t, 2, c.Len())

	got := c.Suggest("res", 0)
	assert.ElementsMatch(t, []string{"resume", "Resume"}, got)

	// Forget removes only the named spelling.
	c.Forget("Resume")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"resume"}, c.Suggest("res", 0))
}

func TestForgetUnknownWord(t *testing.T) {
	c := newCompleter("banana")
	c.Forget("cherry")
	c.Forget("ban") // indexed key prefix, not an entry
	assert.Equal(t, 1, c.Len())
}

func TestReset(t *testing.T) {
	c := newCompleter("banana", "band")
	c.Reset()

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Suggest("ban", 0))

	c.Index("cherry")
	assert.Equal(t, []string{"cherry"}, c.Suggest("che", 0))
}

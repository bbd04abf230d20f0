package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocaleIsPrimaryStrength(t *testing.T) {
	rule := New(language.English)

	testCases := []struct {
		a, b string
		want int
		desc string
	}{
		{"apple", "apple", 0, "identical"},
		{"Apple", "apple", 0, "case is ignored for ordering"},
		{"café", "cafe", 0, "diacritics are ignored for ordering"},
		{"apple", "banana", -1, "plain order"},
		{"cherry", "banana", 1, "plain order reversed"},
		{"Ápple", "banana", -1, "accented initial still sorts as its base letter"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, rule.Compare(tc.a, tc.b), tc.desc)
	}
}

func TestDefaultIsEnglish(t *testing.T) {
	assert.Equal(t, language.English, Default().Tag())
}

func TestCompareFuncAdapter(t *testing.T) {
	calls := 0
	var rule Collation = CompareFunc(func(a, b string) int {
		calls++
		return len(a) - len(b)
	})

	assert.Negative(t, rule.Compare("ab", "abc"))
	assert.Zero(t, rule.Compare("xy", "ab"))
	assert.Equal(t, 2, calls)
}

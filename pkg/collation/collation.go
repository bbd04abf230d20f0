/*
Package collation provides the ordering rules the word list sorts under.

A rule is injected at construction time and never read from process-global
locale state, so two lists in one process can sort under different locales.
The locale-aware rule is primary strength: case, diacritics and width are
ignored for ordering, which means "Apple" and "apple" collate equal while
remaining distinct strings for exact matching.
*/
package collation

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation is a consistent total order over strings.
type Collation interface {
	// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
	Compare(a, b string) int
}

// CompareFunc adapts a plain comparison function to Collation.
type CompareFunc func(a, b string) int

// Compare calls f.
func (f CompareFunc) Compare(a, b string) int { return f(a, b) }

// Locale orders strings by the collation table of a single locale.
type Locale struct {
	col *collate.Collator
	tag language.Tag
}

// New builds a primary strength collator for the given locale tag.
func New(tag language.Tag) *Locale {
	return &Locale{
		col: collate.New(tag, collate.Loose),
		tag: tag,
	}
}

// Default returns the English locale rule.
func Default() *Locale { return New(language.English) }

// Compare implements Collation.
func (l *Locale) Compare(a, b string) int { return l.col.CompareString(a, b) }

// Tag reports which locale the rule was built for.
func (l *Locale) Tag() language.Tag { return l.tag }

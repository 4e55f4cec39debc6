package view

import "strings"

// Badge is the presentational style of one categorical value.
type Badge struct {
	Class string
	Icon  string
}

// BadgeLookup maps a categorical value to its badge, falling back to a neutral
// badge for anything it does not know.
type BadgeLookup struct {
	styles   map[string]Badge
	fallback Badge
	fold     func(string) string
}

func NewBadgeLookup(fallback Badge, styles map[string]Badge) *BadgeLookup {
	return &BadgeLookup{styles: styles, fallback: fallback}
}

// Folding makes the lookup normalise values with fn before matching.
func (b *BadgeLookup) Folding(fn func(string) string) *BadgeLookup {
	b.fold = fn
	return b
}

func (b *BadgeLookup) Lookup(value string) Badge {
	key := value
	if b.fold != nil {
		key = b.fold(key)
	}
	if badge, ok := b.styles[key]; ok {
		return badge
	}
	return b.fallback
}

var accentFolder = strings.NewReplacer("é", "e", "è", "e", "ê", "e", "à", "a", "â", "a", "ô", "o", "î", "i", "ç", "c")

// FoldLower lower-cases value and drops French accents ("Métro" -> "metro").
func FoldLower(value string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(value)))
}

// LastSegment returns the text after the last '#', or value itself when there is none.
func LastSegment(value string) string {
	if i := strings.LastIndex(value, "#"); i >= 0 {
		return value[i+1:]
	}
	return value
}

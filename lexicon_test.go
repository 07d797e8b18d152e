package rucalc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lx := DefaultLexicon()
	require.NotNil(t, lx)
	assert.Same(t, lx, DefaultLexicon())

	e, ok := lx.Numeral("двадцать")
	require.True(t, ok)
	assert.Equal(t, CategoryTen, e.Category)
	assert.EqualValues(t, 20, e.Value)

	e, ok = lx.Numeral("миллионов")
	require.True(t, ok)
	assert.Equal(t, CategoryScale, e.Category)
	assert.EqualValues(t, 1_000_000, e.Value)

	e, ok = lx.Phrase("остаток от деления")
	require.True(t, ok)
	assert.Equal(t, CategoryOperator, e.Category)
	assert.Equal(t, OpMod, e.Symbol)

	e, ok = lx.Phrase("сочетаний из")
	require.True(t, ok)
	assert.Equal(t, CombCombinations, e.Symbol)

	assert.True(t, lx.IsFiller("на"))
	assert.False(t, lx.IsFiller("пять"))
	assert.Equal(t, "и", lx.Conjunction())
	assert.Equal(t, 3, lx.maxPhraseWords)
}

func TestLexiconConstantIsCopy(t *testing.T) {
	lx := DefaultLexicon()
	a, ok := lx.Constant("пи")
	require.True(t, ok)
	a.SetInt64(0)

	b, ok := lx.Constant("пи")
	require.True(t, ok)
	assert.Equal(t, "3126535/995207", b.RatString())

	_, ok = lx.Constant("е")
	assert.False(t, ok)
}

func TestDenominator(t *testing.T) {
	lx := DefaultLexicon()
	tests := []struct {
		word string
		want int64
		ok   bool
	}{
		{"сотых", 100, true},
		{"тысячная", 1000, true},
		{"миллионных", 1_000_000, true},
		{"пятых", 5, true},
		{"вторая", 2, true},
		{"десятых", 10, true},
		{"двадцатых", 20, true},
		{"пять", 5, true},
		{"двух", 0, false},
		{"штук", 0, false},
	}
	for _, tt := range tests {
		got, ok := lx.denominator(tt.word)
		if ok != tt.ok || got != tt.want {
			t.Errorf("denominator(%q) = %d, %v, want %d, %v", tt.word, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEntriesSorted(t *testing.T) {
	entries := DefaultLexicon().Entries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Category > cur.Category ||
			(prev.Category == cur.Category && prev.Phrase > cur.Phrase) {
			t.Fatalf("entries out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

const minimalLexicon = `
digits: {ноль: 0, один: 1, два: 2}
scales: {тысяча: 1000}
ordinal_denominators: {вторых: 2}
conjunction: и
operators:
  - {phrase: плюс, symbol: "+"}
`

func TestParseLexicon(t *testing.T) {
	lx, err := ParseLexicon(strings.NewReader(minimalLexicon))
	require.NoError(t, err)

	got, err := New(WithLexicon(lx)).Evaluate("два тысяча плюс один и один вторых")
	require.NoError(t, err)
	assert.Equal(t, "два тысячи один и один вторых", got)
}

func TestParseLexiconRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", minimalLexicon + "colours: [red]\n"},
		{"numeral in two classes", "digits: {один: 1}\ntens: {один: 10}\n"},
		{"negative numeral", "digits: {один: -1}\n"},
		{"no numerals", "conjunction: и\n"},
		{"zero denominator", minimalLexicon + "decimal_denominators: {нулевых: 0}\n"},
		{"unknown operator symbol", "digits: {один: 1}\noperators:\n  - {phrase: плюс, symbol: \"&\"}\n"},
		{"unary operator symbol", "digits: {один: 1}\noperators:\n  - {phrase: минус, symbol: neg}\n"},
		{"duplicate phrase", "digits: {один: 1}\noperators:\n  - {phrase: плюс, symbol: \"+\"}\nfunctions:\n  - {phrase: плюс, name: sin}\n"},
		{"unknown function", "digits: {один: 1}\nfunctions:\n  - {phrase: логарифм от, name: log}\n"},
		{"unknown combinatorics", "digits: {один: 1}\ncombinatorics:\n  phrases:\n    - {phrase: выборок из, kind: samples}\n"},
		{"bad constant", "digits: {один: 1}\nconstants: {е: два}\n"},
		{"not yaml", "digits: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseLexiconNormalizesKeys(t *testing.T) {
	doc := "digits: {ОДИН: 1, Два: 2}\noperators:\n  - {phrase: \"Плюс\", symbol: \"+\"}\n"
	lx, err := ParseLexicon(strings.NewReader(doc))
	require.NoError(t, err)

	_, ok := lx.Numeral("один")
	assert.True(t, ok)
	_, ok = lx.Phrase("плюс")
	assert.True(t, ok)
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalLexicon), 0o644))

	lx, err := LoadLexicon(path)
	require.NoError(t, err)
	_, ok := lx.Numeral("тысяча")
	assert.True(t, ok)

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

package rucalc

import (
	"math/big"
	"sort"
	"strings"
)

// Category is the semantic class of a lexicon entry.
type Category int

const (
	CategoryDigit Category = iota + 1
	CategoryTen
	CategoryHundred
	CategoryScale
	CategoryDecimalDenom
	CategoryOrdinalDenom
	CategoryOperator
	CategoryFunction
	CategoryCombinatorics
	CategoryParen
	CategoryConjunction
	CategoryFiller
	CategoryConstant
)

var categoryNames = map[Category]string{
	CategoryDigit:         "digit",
	CategoryTen:           "ten",
	CategoryHundred:       "hundred",
	CategoryScale:         "scale",
	CategoryDecimalDenom:  "decimal_denominator",
	CategoryOrdinalDenom:  "ordinal_denominator",
	CategoryOperator:      "operator",
	CategoryFunction:      "function",
	CategoryCombinatorics: "combinatorics",
	CategoryParen:         "paren",
	CategoryConjunction:   "conjunction",
	CategoryFiller:        "filler",
	CategoryConstant:      "constant",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Entry is a single vocabulary item.
type Entry struct {
	// Phrase is the normalized surface form, possibly several words.
	Phrase string
	// Category is the semantic class.
	Category Category
	// Value is the numeric value of numerals and denominators.
	Value int64
	// Symbol is the operator symbol, function name, combinatorics kind,
	// or "(" / ")" for brackets.
	Symbol string
}

func (e Entry) token() Token {
	switch e.Category {
	case CategoryOperator:
		return Token{Kind: TokenOp, Value: e.Symbol}
	case CategoryFunction:
		return Token{Kind: TokenFunc, Value: e.Symbol}
	case CategoryCombinatorics:
		return Token{Kind: TokenComb, Value: e.Symbol}
	case CategoryParen:
		if e.Symbol == "(" {
			return Token{Kind: TokenLParen, Value: e.Symbol}
		}
		return Token{Kind: TokenRParen, Value: e.Symbol}
	default:
		return Token{Kind: TokenWord, Value: e.Phrase}
	}
}

// Lexicon holds the vocabulary of the calculator. A Lexicon is immutable
// once loaded and may be shared between goroutines.
type Lexicon struct {
	// numerals maps digit, ten, hundred and scale words to their entry.
	numerals map[string]Entry

	// decimalDenoms maps place words (сотых, тысячных) to 100, 1000, 10^6.
	decimalDenoms map[string]int64

	// ordinalDenoms maps ordinal fraction words (пятых) to denominators.
	ordinalDenoms map[string]int64

	// phrases maps operator, function, combinatorics and bracket phrases
	// to their entry.
	phrases map[string]Entry

	// maxPhraseWords is the word count of the longest phrase.
	maxPhraseWords int

	// fillers are dropped by the tokenizer.
	fillers map[string]bool

	// constants maps named constants (пи) to their rational value.
	constants map[string]*big.Rat

	// conjunction joins the integer and fractional parts of a number.
	conjunction string

	// combSource is the optional word between a combinatorics keyword and N.
	combSource string

	// combSeparator separates N from K in combinatorics calls.
	combSeparator string
}

func newLexicon() *Lexicon {
	return &Lexicon{
		numerals:      make(map[string]Entry),
		decimalDenoms: make(map[string]int64),
		ordinalDenoms: make(map[string]int64),
		phrases:       make(map[string]Entry),
		fillers:       make(map[string]bool),
		constants:     make(map[string]*big.Rat),
	}
}

// Numeral looks up a digit, ten, hundred or scale word.
func (lx *Lexicon) Numeral(word string) (Entry, bool) {
	e, ok := lx.numerals[word]
	return e, ok
}

// Phrase looks up an operator, function, combinatorics or bracket phrase.
func (lx *Lexicon) Phrase(phrase string) (Entry, bool) {
	e, ok := lx.phrases[phrase]
	return e, ok
}

// Constant returns a copy of the value of a named constant.
func (lx *Lexicon) Constant(word string) (*big.Rat, bool) {
	v, ok := lx.constants[word]
	if !ok {
		return nil, false
	}
	return new(big.Rat).Set(v), true
}

// IsFiller reports whether word is dropped by the tokenizer.
func (lx *Lexicon) IsFiller(word string) bool {
	return lx.fillers[word]
}

// Conjunction returns the word joining integer and fractional parts.
func (lx *Lexicon) Conjunction() string {
	return lx.conjunction
}

// denominator resolves a fractional descriptor word. Explicit place and
// ordinal entries win; otherwise the word is tried as a digit word, then
// with a common adjective ending removed.
func (lx *Lexicon) denominator(word string) (int64, bool) {
	if d, ok := lx.decimalDenoms[word]; ok {
		return d, true
	}
	if d, ok := lx.ordinalDenoms[word]; ok {
		return d, true
	}
	if e, ok := lx.numerals[word]; ok && e.Category == CategoryDigit {
		return e.Value, true
	}
	for _, ending := range ordinalEndings {
		stem, found := strings.CutSuffix(word, ending)
		if !found {
			continue
		}
		if e, ok := lx.numerals[stem]; ok && e.Category == CategoryDigit {
			return e.Value, true
		}
	}
	return 0, false
}

// ordinalEndings are the adjective endings stripped by the fallback
// denominator lookup.
var ordinalEndings = []string{"ых", "ая", "ое", "их", "ую", "ий", "ой", "ый"}

// Entries lists every vocabulary item, sorted by category then phrase.
func (lx *Lexicon) Entries() []Entry {
	var out []Entry
	for _, e := range lx.numerals {
		out = append(out, e)
	}
	for w, d := range lx.decimalDenoms {
		out = append(out, Entry{Phrase: w, Category: CategoryDecimalDenom, Value: d})
	}
	for w, d := range lx.ordinalDenoms {
		out = append(out, Entry{Phrase: w, Category: CategoryOrdinalDenom, Value: d})
	}
	for _, e := range lx.phrases {
		out = append(out, e)
	}
	for w := range lx.fillers {
		out = append(out, Entry{Phrase: w, Category: CategoryFiller})
	}
	for w := range lx.constants {
		out = append(out, Entry{Phrase: w, Category: CategoryConstant})
	}
	if lx.conjunction != "" {
		out = append(out, Entry{Phrase: lx.conjunction, Category: CategoryConjunction})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Phrase < out[j].Phrase
	})
	return out
}

package rucalc

import (
	"strings"
)

// Tokenize splits a normalized expression into tokens. At each position the
// longest lexicon phrase wins; fillers are dropped, named constants become
// TokenConst and every other word is kept as TokenWord for the number
// parser. Tokenize never fails.
func (lx *Lexicon) Tokenize(normalized string) []Token {
	words := strings.Fields(normalized)
	tokens := make([]Token, 0, len(words))
	for i := 0; i < len(words); {
		if e, n, ok := lx.matchPhrase(words, i); ok {
			tokens = append(tokens, e.token())
			i += n
			continue
		}
		w := words[i]
		i++
		if lx.fillers[w] {
			continue
		}
		if _, ok := lx.constants[w]; ok {
			tokens = append(tokens, Token{Kind: TokenConst, Value: w})
			continue
		}
		tokens = append(tokens, Token{Kind: TokenWord, Value: w})
	}
	return tokens
}

// matchPhrase tries phrases starting at words[i], longest first, and
// returns the entry and its word count.
func (lx *Lexicon) matchPhrase(words []string, i int) (Entry, int, bool) {
	n := min(lx.maxPhraseWords, len(words)-i)
	for ; n >= 1; n-- {
		if e, ok := lx.phrases[strings.Join(words[i:i+n], " ")]; ok {
			return e, n, true
		}
	}
	return Entry{}, 0, false
}

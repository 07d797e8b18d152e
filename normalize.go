package rucalc

import (
	"strings"
)

// foldReplacer folds spelling variants onto the lexicon's forms.
var foldReplacer = strings.NewReplacer(
	"ё", "е",
	"π", " пи ",
)

// Normalize lower-cases s, folds ё to е and π to пи, and collapses runs of
// whitespace to single spaces. Lexicon phrases and tokenizer input are
// both normalized, so lookups compare like with like.
func Normalize(s string) string {
	s = foldReplacer.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

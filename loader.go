package rucalc

import (
	"bytes"
	_ "embed"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var embeddedLexicon []byte

// lexiconFile mirrors the layout of data/lexicon.yaml.
type lexiconFile struct {
	Digits              map[string]int64 `yaml:"digits"`
	Tens                map[string]int64 `yaml:"tens"`
	Hundreds            map[string]int64 `yaml:"hundreds"`
	Scales              map[string]int64 `yaml:"scales"`
	DecimalDenominators map[string]int64 `yaml:"decimal_denominators"`
	OrdinalDenominators map[string]int64 `yaml:"ordinal_denominators"`
	Conjunction         string           `yaml:"conjunction"`
	Fillers             []string         `yaml:"fillers"`
	Operators           []struct {
		Phrase string `yaml:"phrase"`
		Symbol string `yaml:"symbol"`
	} `yaml:"operators"`
	Functions []struct {
		Phrase string `yaml:"phrase"`
		Name   string `yaml:"name"`
	} `yaml:"functions"`
	Combinatorics struct {
		Source    string `yaml:"source"`
		Separator string `yaml:"separator"`
		Phrases   []struct {
			Phrase string `yaml:"phrase"`
			Kind   string `yaml:"kind"`
		} `yaml:"phrases"`
	} `yaml:"combinatorics"`
	Parens struct {
		Open  []string `yaml:"open"`
		Close []string `yaml:"close"`
	} `yaml:"parens"`
	Constants map[string]string `yaml:"constants"`
}

var (
	defaultLexiconOnce sync.Once
	defaultLexicon     *Lexicon
)

// DefaultLexicon returns the embedded Russian vocabulary. It is parsed on
// first use and shared by every caller.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		lx, err := ParseLexicon(bytes.NewReader(embeddedLexicon))
		if err != nil {
			panic(errors.Wrap(err, "embedded lexicon"))
		}
		defaultLexicon = lx
	})
	return defaultLexicon
}

// LoadLexicon reads a lexicon document from path.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open lexicon %s", path)
	}
	defer f.Close()

	lx, err := ParseLexicon(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load lexicon %s", path)
	}
	return lx, nil
}

// ParseLexicon decodes a YAML lexicon document. Unknown keys, duplicate
// surface forms and unknown operator, function or combinatorics names are
// rejected.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f lexiconFile
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode lexicon")
	}

	lx := newLexicon()
	if err := lx.loadNumerals(&f); err != nil {
		return nil, err
	}
	if err := lx.loadDenominators(&f); err != nil {
		return nil, err
	}
	if err := lx.loadPhrases(&f); err != nil {
		return nil, err
	}
	if err := lx.loadWords(&f); err != nil {
		return nil, err
	}
	return lx, nil
}

// loadNumerals fills lx.numerals; a word may belong to one numeral class only.
func (lx *Lexicon) loadNumerals(f *lexiconFile) error {
	groups := []struct {
		cat   Category
		words map[string]int64
	}{
		{CategoryDigit, f.Digits},
		{CategoryTen, f.Tens},
		{CategoryHundred, f.Hundreds},
		{CategoryScale, f.Scales},
	}
	for _, g := range groups {
		for w, v := range g.words {
			w = Normalize(w)
			if prev, dup := lx.numerals[w]; dup {
				return errors.Newf("numeral %q is both %s and %s", w, prev.Category, g.cat)
			}
			if v < 0 {
				return errors.Newf("numeral %q has negative value %d", w, v)
			}
			lx.numerals[w] = Entry{Phrase: w, Category: g.cat, Value: v}
		}
	}
	if len(lx.numerals) == 0 {
		return errors.New("lexicon has no numerals")
	}
	return nil
}

func (lx *Lexicon) loadDenominators(f *lexiconFile) error {
	for w, d := range f.DecimalDenominators {
		if d <= 0 {
			return errors.Newf("decimal denominator %q must be positive", w)
		}
		lx.decimalDenoms[Normalize(w)] = d
	}
	for w, d := range f.OrdinalDenominators {
		if d <= 0 {
			return errors.Newf("ordinal denominator %q must be positive", w)
		}
		lx.ordinalDenoms[Normalize(w)] = d
	}
	return nil
}

// loadPhrases registers operator, function, combinatorics and bracket
// phrases. The tokenizer keys phrases by surface form, so a phrase may
// appear only once across all of these categories.
func (lx *Lexicon) loadPhrases(f *lexiconFile) error {
	add := func(e Entry) error {
		e.Phrase = Normalize(e.Phrase)
		if e.Phrase == "" {
			return errors.Newf("empty %s phrase", e.Category)
		}
		if prev, dup := lx.phrases[e.Phrase]; dup {
			return errors.Newf("phrase %q is both %s and %s", e.Phrase, prev.Category, e.Category)
		}
		lx.phrases[e.Phrase] = e
		if n := len(strings.Fields(e.Phrase)); n > lx.maxPhraseWords {
			lx.maxPhraseWords = n
		}
		return nil
	}

	for _, op := range f.Operators {
		o, ok := operators[op.Symbol]
		if !ok || o.Unary {
			return errors.Newf("operator %q has unknown symbol %q", op.Phrase, op.Symbol)
		}
		if err := add(Entry{Phrase: op.Phrase, Category: CategoryOperator, Symbol: op.Symbol}); err != nil {
			return err
		}
	}
	for _, fn := range f.Functions {
		if !isFunction(fn.Name) {
			return errors.Newf("function %q has unknown name %q", fn.Phrase, fn.Name)
		}
		if err := add(Entry{Phrase: fn.Phrase, Category: CategoryFunction, Symbol: fn.Name}); err != nil {
			return err
		}
	}
	for _, c := range f.Combinatorics.Phrases {
		if !isCombinatorics(c.Kind) {
			return errors.Newf("combinatorics phrase %q has unknown kind %q", c.Phrase, c.Kind)
		}
		if err := add(Entry{Phrase: c.Phrase, Category: CategoryCombinatorics, Symbol: c.Kind}); err != nil {
			return err
		}
	}
	for _, p := range f.Parens.Open {
		if err := add(Entry{Phrase: p, Category: CategoryParen, Symbol: "("}); err != nil {
			return err
		}
	}
	for _, p := range f.Parens.Close {
		if err := add(Entry{Phrase: p, Category: CategoryParen, Symbol: ")"}); err != nil {
			return err
		}
	}
	return nil
}

// loadWords handles the single-word categories: conjunction, fillers,
// combinatorics connectors and constants.
func (lx *Lexicon) loadWords(f *lexiconFile) error {
	lx.conjunction = Normalize(f.Conjunction)
	lx.combSource = Normalize(f.Combinatorics.Source)
	lx.combSeparator = Normalize(f.Combinatorics.Separator)
	for _, w := range f.Fillers {
		lx.fillers[Normalize(w)] = true
	}
	for w, raw := range f.Constants {
		v, ok := new(big.Rat).SetString(raw)
		if !ok {
			return errors.Newf("constant %q has invalid value %q", w, raw)
		}
		lx.constants[Normalize(w)] = limitDenominator(v, MaxDenominator)
	}
	return nil
}

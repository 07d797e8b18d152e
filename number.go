package rucalc

import (
	"math/big"
	"strings"
)

// parseInteger reads an integer spelled with digit, ten, hundred and scale
// words from words[start:]. Words are summed into a hundred block; a scale
// word multiplies the block (a block with no words counts as one) and adds
// it to the total. It returns the value and the index of the last word consumed.
func (lx *Lexicon) parseInteger(words []string, start int) (*big.Int, int, error) {
	if start >= len(words) {
		return nil, 0, withHint(parseErrorf("ожидалось число"),
			"после «и» должна идти дробная часть, например «пять десятых»")
	}

	total := new(big.Int)
	block := new(big.Int)
	blockHasWords := false
	consumed := 0
	for i := start; i < len(words); i++ {
		e, ok := lx.numerals[words[i]]
		if !ok {
			break
		}
		if e.Category == CategoryScale {
			if !blockHasWords {
				block.SetInt64(1)
			}
			total.Add(total, block.Mul(block, big.NewInt(e.Value)))
			block.SetInt64(0)
			blockHasWords = false
		} else {
			block.Add(block, big.NewInt(e.Value))
			blockHasWords = true
		}
		consumed++
	}
	if consumed == 0 {
		return nil, 0, withHint(parseErrorf("ожидалось число, но найдено «%s»", words[start]),
			"числа записываются словами: «двадцать пять», «сто три»")
	}
	total.Add(total, block)
	return total, start + consumed - 1, nil
}

// parseFraction reads a fractional descriptor: numerator words followed by
// a place word (сотых) or an ordinal word (пятых).
func (lx *Lexicon) parseFraction(words []string, start int) (*big.Rat, int, error) {
	num, last, err := lx.parseInteger(words, start)
	if err != nil {
		return nil, 0, err
	}
	next := last + 1
	if next >= len(words) {
		return nil, 0, parseErrorf("после числителя дроби ожидается разряд (сотых, тысячных) или знаменатель (пятых)")
	}
	den, ok := lx.denominator(words[next])
	if !ok {
		return nil, 0, parseErrorf("неизвестный тип дробной части: «%s»", words[next])
	}
	if den == 0 {
		return nil, 0, mathErrorf("деление на ноль в знаменателе дроби")
	}
	return new(big.Rat).SetFrac(num, big.NewInt(den)), next, nil
}

// parseNumber reads an integer, optionally followed by the conjunction and
// a fractional descriptor ("один и четыре пятых", "три и семь сотых").
func (lx *Lexicon) parseNumber(words []string, start int) (*big.Rat, int, error) {
	whole, last, err := lx.parseInteger(words, start)
	if err != nil {
		return nil, 0, err
	}
	value := new(big.Rat).SetInt(whole)
	next := last + 1
	if next >= len(words) || words[next] != lx.conjunction {
		return value, last, nil
	}
	frac, last, err := lx.parseFraction(words, next+1)
	if err != nil {
		return nil, 0, err
	}
	return value.Add(value, frac), last, nil
}

// parseWholeNumber reads a number that must span all of words.
func (lx *Lexicon) parseWholeNumber(words []string) (*big.Rat, error) {
	v, last, err := lx.parseNumber(words, 0)
	if err != nil {
		return nil, err
	}
	if last != len(words)-1 {
		return nil, parseErrorf("лишние слова после числа: «%s»", strings.Join(words[last+1:], " "))
	}
	return v, nil
}

// ParseNumber reads a spelled-out number that makes up the whole of text.
func (lx *Lexicon) ParseNumber(text string) (*big.Rat, error) {
	words := strings.Fields(Normalize(text))
	if len(words) == 0 {
		return nil, parseErrorf("пустая строка, ожидалось число")
	}
	return lx.parseWholeNumber(words)
}

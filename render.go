package rucalc

import (
	"math/big"
	"strings"
)

var onesWords = [...]string{
	"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
	"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
	"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
}

var tensWords = [...]string{
	2: "двадцать", 3: "тридцать", 4: "сорок", 5: "пятьдесят",
	6: "шестьдесят", 7: "семьдесят", 8: "восемьдесят", 9: "девяносто",
}

var hundredsWords = [...]string{
	1: "сто", 2: "двести", 3: "триста", 4: "четыреста", 5: "пятьсот",
	6: "шестьсот", 7: "семьсот", 8: "восемьсот", 9: "девятьсот",
}

// pluralForms holds the one / few / many forms of a scale word.
type pluralForms [3]string

var (
	thousandForms = pluralForms{"тысяча", "тысячи", "тысяч"}
	millionForms  = pluralForms{"миллион", "миллиона", "миллионов"}
)

// pick chooses the form for a count whose last two digits are mod100:
// 11–14 take "many", otherwise the last digit decides (1 one, 2–4 few).
func (p pluralForms) pick(mod100 int64) string {
	if mod100 >= 11 && mod100 <= 14 {
		return p[2]
	}
	switch mod100 % 10 {
	case 1:
		return p[0]
	case 2, 3, 4:
		return p[1]
	default:
		return p[2]
	}
}

// decimalPlaceWords names the special denominators rendered as decimal
// places rather than as ordinals.
var decimalPlaceWords = map[int64]string{
	100:       "сотых",
	1000:      "тысячных",
	1_000_000: "миллионных",
}

// ordinalWords are the irregular denominator forms; other denominators are
// spelled as "<число>-ых".
var ordinalWords = map[int64]string{
	2: "вторых",
	3: "третьих",
	4: "четвертых",
	5: "пятых",
	7: "седьмых",
	9: "девятых",
}

// maxPeriodDigits caps how many digits of a repeating cycle are spoken.
const maxPeriodDigits = 4

var bigMillion = big.NewInt(1_000_000)

// IntegerWords spells n in Russian. Millions recurse, so any magnitude is
// accepted.
func IntegerWords(n *big.Int) string {
	switch n.Sign() {
	case 0:
		return onesWords[0]
	case -1:
		return "минус " + IntegerWords(new(big.Int).Neg(n))
	}

	var parts []string
	millions, rest := new(big.Int).QuoRem(n, bigMillion, new(big.Int))
	if millions.Sign() > 0 {
		mod100 := new(big.Int).Rem(millions, big.NewInt(100)).Int64()
		parts = append(parts, IntegerWords(millions)+" "+millionForms.pick(mod100))
	}
	r := rest.Int64()
	if r >= 1000 {
		thousands := r / 1000
		parts = append(parts, hundredsToWords(thousands)+" "+thousandForms.pick(thousands%100))
		r %= 1000
	}
	if r > 0 {
		parts = append(parts, hundredsToWords(r))
	}
	return strings.Join(parts, " ")
}

// hundredsToWords spells 1 <= n <= 999.
func hundredsToWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, hundredsWords[n/100])
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}

// Render spells r in Russian words. Integers are spelled directly;
// fractions with a denominator of 100, 1000 or 10^6 use decimal place
// words; non-terminating fractions are spoken with their period when one
// is found within a few digits; anything else is a mixed fraction with an
// ordinal denominator.
func Render(r *big.Rat) string {
	sign := ""
	if r.Sign() < 0 {
		sign = "минус "
		r = new(big.Rat).Abs(r)
	}

	den := r.Denom()
	whole, rem := new(big.Int).QuoRem(r.Num(), den, new(big.Int))
	if rem.Sign() == 0 {
		return sign + IntegerWords(whole)
	}
	wholeWords := IntegerWords(whole)

	if den.IsInt64() {
		if place, ok := decimalPlaceWords[den.Int64()]; ok {
			return sign + wholeWords + " и " + IntegerWords(rem) + " " + place
		}
	}

	if !isTerminating(den) {
		digits, start := expandDecimal(rem, den, maxExpansionDigits)
		if start >= 0 {
			period := digits[start:]
			if len(period) > maxPeriodDigits {
				period = period[:maxPeriodDigits]
			}
			return sign + wholeWords + " и " + digitsWords(digits[:start]) +
				" и " + digitsWords(period) + " в периоде"
		}
	}

	frac := IntegerWords(rem) + " " + denominatorWord(den)
	if whole.Sign() == 0 {
		return sign + frac
	}
	return sign + wholeWords + " и " + frac
}

// digitsWords reads a digit string as one number, dropping leading zeros;
// an empty string reads as zero.
func digitsWords(digits []byte) string {
	if len(digits) == 0 {
		return onesWords[0]
	}
	n, _ := new(big.Int).SetString(string(digits), 10)
	return IntegerWords(n)
}

func denominatorWord(den *big.Int) string {
	if den.IsInt64() {
		if w, ok := ordinalWords[den.Int64()]; ok {
			return w
		}
	}
	return IntegerWords(den) + "-ых"
}

package rucalc

import (
	"math"
	"math/big"
)

// MaxDenominator bounds the denominator of rationals recovered from
// floating-point results (trigonometry, fractional powers, constants).
const MaxDenominator = 1_000_000

// maxExpansionDigits caps the long division used to look for a period.
const maxExpansionDigits = 21

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// limitDenominator returns the closest rational to r whose denominator is
// at most maxDen, found from the continued-fraction convergents of r and
// the best semiconvergent after the last one that fits.
func limitDenominator(r *big.Rat, maxDen int64) *big.Rat {
	limit := big.NewInt(maxDen)
	if r.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(r)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a := new(big.Int)
	q2 := new(big.Int)
	for {
		a.Div(n, d) // d > 0, so this is floor division
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)

		rem := new(big.Int).Mul(a, d)
		rem.Sub(n, rem)
		n, d = d, rem
	}

	k := new(big.Int).Sub(limit, q0)
	k.Div(k, q1)
	bp := new(big.Int).Mul(k, p1)
	bp.Add(bp, p0)
	bq := new(big.Int).Mul(k, q1)
	bq.Add(bq, q0)

	// p1/q1 wins when 2*d*bq <= denominator of r.
	lhs := new(big.Int).Mul(d, bq)
	lhs.Lsh(lhs, 1)
	if lhs.Cmp(r.Denom()) <= 0 {
		return new(big.Rat).SetFrac(p1, q1)
	}
	return new(big.Rat).SetFrac(bp, bq)
}

// approximate converts a float64 result back to a bounded rational.
// It reports false for NaN and infinities.
func approximate(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return limitDenominator(new(big.Rat).SetFloat64(f), MaxDenominator), true
}

// floorRat returns the largest integer not greater than r.
func floorRat(r *big.Rat) *big.Int {
	// Euclidean division by a positive denominator rounds toward -inf.
	return new(big.Int).Div(r.Num(), r.Denom())
}

// truncRat drops the fractional part of r, rounding toward zero.
func truncRat(r *big.Rat) *big.Int {
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// isTerminating reports whether 1/den has a finite decimal expansion,
// i.e. den has no prime factors other than 2 and 5.
func isTerminating(den *big.Int) bool {
	d := new(big.Int).Set(den)
	five := big.NewInt(5)
	for _, p := range []*big.Int{bigTwo, five} {
		for d.Cmp(bigOne) > 0 {
			q, r := new(big.Int).QuoRem(d, p, new(big.Int))
			if r.Sign() != 0 {
				break
			}
			d = q
		}
	}
	return d.Cmp(bigOne) == 0
}

// expandDecimal long-divides rem/den (0 < rem < den) for at most maxDigits
// digits. It returns the digits produced and the index where the repeating
// cycle starts, or -1 if no remainder repeated within the limit.
func expandDecimal(rem, den *big.Int, maxDigits int) ([]byte, int) {
	r := new(big.Int).Set(rem)
	seen := make(map[string]int)
	var digits []byte
	for pos := 0; r.Sign() != 0 && pos < maxDigits; pos++ {
		key := r.String()
		if at, ok := seen[key]; ok {
			return digits, at
		}
		seen[key] = pos
		q, m := new(big.Int).QuoRem(r.Mul(r, bigTen), den, new(big.Int))
		digits = append(digits, byte('0'+q.Int64()))
		r = m
	}
	return digits, -1
}

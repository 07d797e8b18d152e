package rucalc

import (
	"math"
	"math/big"
)

const (
	// MaxCombinatoricsArg bounds N in combinatorics calls.
	MaxCombinatoricsArg = 10_000
	// MaxExponent bounds the magnitude of exact integer exponents.
	MaxExponent = 10_000
	// MaxResultBits bounds the numerator and denominator of every
	// intermediate value, so chained operations stay small enough to
	// compute and spell out.
	MaxResultBits = 1 << 16
)

func ratBits(r *big.Rat) int {
	return max(r.Num().BitLen(), r.Denom().BitLen())
}

// checkSize rejects values larger than MaxResultBits.
func checkSize(r *big.Rat) (*big.Rat, error) {
	if ratBits(r) > MaxResultBits {
		return nil, withHint(mathErrorf("слишком большое число: больше %d двоичных разрядов", MaxResultBits),
			"уменьшите степень или аргумент комбинаторной операции")
	}
	return r, nil
}

// evaluatePostfix runs a postfix sequence on an operand stack.
func evaluatePostfix(elems []Element) (*big.Rat, error) {
	var stack []*big.Rat
	pop := func() *big.Rat {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, el := range elems {
		switch el.Kind {
		case ElemNum:
			stack = append(stack, new(big.Rat).Set(el.Num))

		case ElemOp:
			if el.Symbol == OpNeg {
				if len(stack) < 1 {
					return nil, parseErrorf("недостаточно операндов для унарной операции")
				}
				stack = append(stack, new(big.Rat).Neg(pop()))
				continue
			}
			if len(stack) < 2 {
				return nil, parseErrorf("недостаточно операндов для бинарной операции")
			}
			b := pop()
			a := pop()
			v, err := applyBinary(el.Symbol, a, b)
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)

		case ElemFunc:
			if len(stack) < 1 {
				return nil, parseErrorf("недостаточно операндов для функции")
			}
			v, err := applyFunction(el.Symbol, pop())
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)

		case ElemComb:
			v, err := combinatorics(el.Symbol, el.N, el.K)
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)

		default:
			return nil, parseErrorf("неподдерживаемый элемент выражения: %s", el)
		}
	}

	if len(stack) != 1 {
		return nil, parseErrorf("некорректное выражение: после вычисления на стеке %d значений вместо одного", len(stack))
	}
	return checkSize(stack[0])
}

func applyBinary(symbol string, a, b *big.Rat) (*big.Rat, error) {
	v, err := binary(symbol, a, b)
	if err != nil {
		return nil, err
	}
	return checkSize(v)
}

func binary(symbol string, a, b *big.Rat) (*big.Rat, error) {
	switch symbol {
	case OpAdd:
		return new(big.Rat).Add(a, b), nil
	case OpSub:
		return new(big.Rat).Sub(a, b), nil
	case OpMul:
		return new(big.Rat).Mul(a, b), nil
	case OpDiv:
		if b.Sign() == 0 {
			return nil, mathErrorf("деление на ноль")
		}
		return new(big.Rat).Quo(a, b), nil
	case OpMod:
		if b.Sign() == 0 {
			return nil, mathErrorf("деление на ноль в операции остатка")
		}
		// a - b*floor(a/b): the sign follows the divisor.
		q := floorRat(new(big.Rat).Quo(a, b))
		prod := new(big.Rat).Mul(b, new(big.Rat).SetInt(q))
		return prod.Sub(a, prod), nil
	case OpPow:
		return power(a, b)
	default:
		return nil, parseErrorf("неизвестный оператор «%s»", symbol)
	}
}

// power raises a to b exactly for integer b; other exponents go through
// float64 and come back as a bounded rational.
func power(a, b *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 && b.Sign() < 0 {
		return nil, mathErrorf("деление на ноль: ноль в отрицательной степени")
	}
	if !b.IsInt() {
		af, _ := a.Float64()
		bf, _ := b.Float64()
		v, ok := approximate(math.Pow(af, bf))
		if !ok {
			return nil, mathErrorf("результат возведения в степень не является действительным числом")
		}
		return v, nil
	}

	e := b.Num()
	if e.CmpAbs(big.NewInt(MaxExponent)) > 0 {
		return nil, withHint(mathErrorf("слишком большой показатель степени: %s", e),
			"показатель степени не может превышать десять тысяч по модулю")
	}
	abs := new(big.Int).Abs(e)
	if int64(ratBits(a))*abs.Int64() > MaxResultBits {
		return nil, withHint(mathErrorf("слишком большое число: результат возведения в степень больше %d двоичных разрядов", MaxResultBits),
			"уменьшите основание или показатель степени")
	}
	num := new(big.Int).Exp(a.Num(), abs, nil)
	den := new(big.Int).Exp(a.Denom(), abs, nil)
	if e.Sign() < 0 {
		num, den = den, num
	}
	// SetFrac normalizes the sign when the base was negative.
	return new(big.Rat).SetFrac(num, den), nil
}

func applyFunction(name string, arg *big.Rat) (*big.Rat, error) {
	x, _ := arg.Float64()
	var f float64
	switch name {
	case FuncSin:
		f = math.Sin(x)
	case FuncCos:
		f = math.Cos(x)
	case FuncTan:
		f = math.Tan(x)
	default:
		return nil, parseErrorf("неизвестная функция «%s»", name)
	}
	v, ok := approximate(f)
	if !ok {
		return nil, mathErrorf("функция %s не определена в точке %s", name, arg.RatString())
	}
	return v, nil
}

// combinatorics evaluates n!, n!/(n-k)! or C(n, k). Arguments are truncated
// toward zero; a negative argument or k > n gives 0.
func combinatorics(kind string, nArg, kArg *big.Rat) (*big.Rat, error) {
	n := truncRat(nArg)
	if n.Cmp(big.NewInt(MaxCombinatoricsArg)) > 0 {
		return nil, withHint(mathErrorf("слишком большой аргумент комбинаторной операции: %s", n),
			"аргумент не может превышать десять тысяч")
	}
	if n.Sign() < 0 {
		return new(big.Rat), nil
	}
	nv := n.Int64()

	if kArg == nil {
		if kind != CombPermutations {
			return nil, parseErrorf("для %s нужно второе число", combNames[kind])
		}
		return checkSize(new(big.Rat).SetInt(new(big.Int).MulRange(1, nv)))
	}

	k := truncRat(kArg)
	if k.Sign() < 0 || k.Cmp(n) > 0 {
		return new(big.Rat), nil
	}
	kv := k.Int64()

	switch kind {
	case CombPermutations, CombArrangements:
		return checkSize(new(big.Rat).SetInt(new(big.Int).MulRange(nv-kv+1, nv)))
	case CombCombinations:
		return checkSize(new(big.Rat).SetInt(new(big.Int).Binomial(nv, kv)))
	default:
		return nil, parseErrorf("неизвестный вид комбинаторики: %s", kind)
	}
}

package rucalc

// buildPostfix converts tokens into postfix order with the shunting-yard
// algorithm. Word runs are assembled into numbers on the way; combinatorics
// calls read their own arguments and go straight to the output.
func (lx *Lexicon) buildPostfix(tokens []Token) ([]Element, error) {
	var (
		out   []Element
		stack []Token
		// prevValue is true when the last thing read completed an operand.
		prevValue bool
	)
	pop := func() Token {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Kind {
		case TokenWord:
			words := wordRun(tokens, i)
			v, last, err := lx.parseNumber(words, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, numElement(v))
			i += last + 1
			prevValue = true

		case TokenConst:
			v, ok := lx.Constant(tok.Value)
			if !ok {
				return nil, parseErrorf("неизвестная константа «%s»", tok.Value)
			}
			out = append(out, numElement(v))
			i++
			prevValue = true

		case TokenOp:
			sym := tok.Value
			if sym == OpSub && !prevValue {
				sym = OpNeg
			}
			op, ok := operators[sym]
			if !ok {
				return nil, parseErrorf("неизвестный оператор «%s»", sym)
			}
			// A prefix operator has no left operand to finish, so nothing
			// on the stack is complete yet.
			for !op.Unary && len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenFunc {
					out = append(out, funcElement(pop().Value))
					continue
				}
				if top.Kind == TokenOp && op.yields(operators[top.Value]) {
					out = append(out, opElement(pop().Value))
					continue
				}
				break
			}
			stack = append(stack, Token{Kind: TokenOp, Value: sym})
			i++
			prevValue = false

		case TokenFunc, TokenLParen:
			stack = append(stack, tok)
			i++
			prevValue = false

		case TokenComb:
			el, next, err := lx.parseCombinatorics(tokens, i)
			if err != nil {
				return nil, err
			}
			out = append(out, el)
			i = next
			prevValue = true

		case TokenRParen:
			matched := false
			for len(stack) > 0 {
				top := pop()
				if top.Kind == TokenLParen {
					matched = true
					break
				}
				out = append(out, stackElement(top))
			}
			if !matched {
				return nil, parseErrorf("несбалансированные скобки: закрывающая скобка без открывающей")
			}
			i++
			prevValue = true

		default:
			return nil, parseErrorf("неизвестный тип токена: %s", tok.Kind)
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top.Kind == TokenLParen {
			return nil, parseErrorf("несбалансированные скобки: незакрытая скобка")
		}
		out = append(out, stackElement(top))
	}
	return out, nil
}

// parseCombinatorics reads "<kind> [из] N [по K]" starting at the
// combinatorics token tokens[i]. It returns the element and the index of
// the first token after the call.
func (lx *Lexicon) parseCombinatorics(tokens []Token, i int) (Element, int, error) {
	kind := tokens[i].Value
	j := i + 1
	if j < len(tokens) && tokens[j].Kind == TokenWord && tokens[j].Value == lx.combSource {
		j++
	}

	var nWords []string
	for ; j < len(tokens) && tokens[j].Kind == TokenWord && tokens[j].Value != lx.combSeparator; j++ {
		nWords = append(nWords, tokens[j].Value)
	}
	if len(nWords) == 0 {
		return Element{}, 0, parseErrorf("ожидалось число после «%s» в комбинаторной операции", lx.combSource)
	}
	n, err := lx.parseWholeNumber(nWords)
	if err != nil {
		return Element{}, 0, err
	}

	if j >= len(tokens) || tokens[j].Kind != TokenWord || tokens[j].Value != lx.combSeparator {
		if kind != CombPermutations {
			return Element{}, 0, withHint(
				parseErrorf("для %s нужно второе число после «%s»", combNames[kind], lx.combSeparator),
				"например: «сочетаний из пять по три»")
		}
		return combElement(kind, n, nil), j, nil
	}

	j++
	kWords := wordRun(tokens, j)
	if len(kWords) == 0 {
		return Element{}, 0, parseErrorf("ожидалось число после «%s» в комбинаторной операции", lx.combSeparator)
	}
	k, err := lx.parseWholeNumber(kWords)
	if err != nil {
		return Element{}, 0, err
	}
	return combElement(kind, n, k), j + len(kWords), nil
}

// combNames are used in error messages.
var combNames = map[string]string{
	CombPermutations: "перестановок",
	CombArrangements: "размещений",
	CombCombinations: "сочетаний",
}

// wordRun collects the values of consecutive word tokens from tokens[i].
func wordRun(tokens []Token, i int) []string {
	var words []string
	for ; i < len(tokens) && tokens[i].Kind == TokenWord; i++ {
		words = append(words, tokens[i].Value)
	}
	return words
}

func stackElement(t Token) Element {
	if t.Kind == TokenFunc {
		return funcElement(t.Value)
	}
	return opElement(t.Value)
}

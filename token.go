package rucalc

import (
	"fmt"
	"math/big"
	"strings"
)

// TokenKind classifies a token produced by the tokenizer.
type TokenKind rune

const (
	TokenWord   TokenKind = 'w'
	TokenOp     TokenKind = 'o'
	TokenFunc   TokenKind = 'f'
	TokenComb   TokenKind = 'c'
	TokenLParen TokenKind = '('
	TokenRParen TokenKind = ')'
	TokenConst  TokenKind = 'k'
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "WORD"
	case TokenOp:
		return "OP"
	case TokenFunc:
		return "FUNC"
	case TokenComb:
		return "COMB"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenConst:
		return "CONST"
	default:
		return "UNKNOWN"
	}
}

// Token is one unit of a tokenized expression.
type Token struct {
	// Kind is the token class.
	Kind TokenKind
	// Value is the raw word for TokenWord and TokenConst, the operator
	// symbol for TokenOp, the function name for TokenFunc and the
	// combinatorics kind for TokenComb.
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// ElementKind classifies a postfix element.
type ElementKind rune

const (
	ElemNum  ElementKind = 'n'
	ElemOp   ElementKind = 'o'
	ElemFunc ElementKind = 'f'
	ElemComb ElementKind = 'c'
)

// Element is one item of the postfix sequence handed to the evaluator.
type Element struct {
	Kind ElementKind
	// Num is set for ElemNum.
	Num *big.Rat
	// Symbol is the operator symbol (OpNeg for unary negation), the
	// function name or the combinatorics kind.
	Symbol string
	// N and K are the combinatorics arguments; K is nil when only N was given.
	N, K *big.Rat
}

func numElement(r *big.Rat) Element {
	return Element{Kind: ElemNum, Num: new(big.Rat).Set(r)}
}

func opElement(symbol string) Element {
	return Element{Kind: ElemOp, Symbol: symbol}
}

func funcElement(name string) Element {
	return Element{Kind: ElemFunc, Symbol: name}
}

func combElement(kind string, n, k *big.Rat) Element {
	return Element{Kind: ElemComb, Symbol: kind, N: n, K: k}
}

func (e Element) String() string {
	switch e.Kind {
	case ElemNum:
		return e.Num.RatString()
	case ElemComb:
		if e.K == nil {
			return fmt.Sprintf("%s(%s)", e.Symbol, e.N.RatString())
		}
		return fmt.Sprintf("%s(%s,%s)", e.Symbol, e.N.RatString(), e.K.RatString())
	default:
		return e.Symbol
	}
}

// FormatPostfix joins a postfix sequence with single spaces.
func FormatPostfix(elems []Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

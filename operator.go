package rucalc

// Operator symbols carried by TokenOp and ElemOp.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpMod = "%"
	OpPow = "^"
	// OpNeg is the synthetic unary negation produced by the builder when
	// a minus has no value to its left.
	OpNeg = "neg"
)

// Function names carried by TokenFunc and ElemFunc.
const (
	FuncSin = "sin"
	FuncCos = "cos"
	FuncTan = "tan"
)

// Combinatorics kinds carried by TokenComb and ElemComb.
const (
	CombPermutations = "permutations"
	CombArrangements = "arrangements"
	CombCombinations = "combinations"
)

// Assoc is the associativity of a binary operator.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

// Operator describes how an operator binds.
type Operator struct {
	Symbol     string
	Precedence int
	Assoc      Assoc
	// Unary is true for operators taking a single operand.
	Unary bool
}

// operators is the precedence table. Vocabulary lives in the lexicon;
// binding rules live here so every lexicon shares them.
var operators = map[string]Operator{
	OpAdd: {Symbol: OpAdd, Precedence: 1, Assoc: AssocLeft},
	OpSub: {Symbol: OpSub, Precedence: 1, Assoc: AssocLeft},
	OpMul: {Symbol: OpMul, Precedence: 2, Assoc: AssocLeft},
	OpDiv: {Symbol: OpDiv, Precedence: 2, Assoc: AssocLeft},
	OpMod: {Symbol: OpMod, Precedence: 2, Assoc: AssocLeft},
	OpPow: {Symbol: OpPow, Precedence: 3, Assoc: AssocRight},
	OpNeg: {Symbol: OpNeg, Precedence: 4, Assoc: AssocRight, Unary: true},
}

// LookupOperator returns the binding rules for symbol.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// yields reports whether an operator already on the stack must be output
// before op is pushed.
func (op Operator) yields(top Operator) bool {
	if op.Assoc == AssocLeft {
		return op.Precedence <= top.Precedence
	}
	return op.Precedence < top.Precedence
}

func isFunction(name string) bool {
	switch name {
	case FuncSin, FuncCos, FuncTan:
		return true
	}
	return false
}

func isCombinatorics(kind string) bool {
	switch kind {
	case CombPermutations, CombArrangements, CombCombinations:
		return true
	}
	return false
}

// Package rucalc evaluates arithmetic expressions written out in Russian
// words ("двадцать пять плюс тринадцать") and spells the exact result back
// in words ("тридцать восемь").
//
// Evaluation runs as a fixed pipeline: Normalize, Tokenize (longest phrase
// match against the Lexicon), number assembly and shunting-yard ordering
// into postfix Elements, exact evaluation on math/big rationals, and Render.
// Only trigonometry and non-integer powers leave exact arithmetic; their
// results are brought back as rationals with denominators up to
// MaxDenominator.
package rucalc

import (
	"math/big"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Calculator holds the vocabulary and the logger used by the pipeline.
// It has no per-call state and is safe for concurrent use.
type Calculator struct {
	// lexicon is the vocabulary used to read expressions.
	lexicon *Lexicon

	// log receives one debug event per pipeline stage.
	log *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLexicon replaces the embedded vocabulary.
func WithLexicon(lx *Lexicon) Option {
	return func(c *Calculator) {
		if lx != nil {
			c.lexicon = lx
		}
	}
}

// WithLogger sets the logger for pipeline debug events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Calculator using the embedded lexicon unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.lexicon == nil {
		c.lexicon = DefaultLexicon()
	}
	return c
}

// Lexicon returns the vocabulary in use.
func (c *Calculator) Lexicon() *Lexicon {
	return c.lexicon
}

// Tokenize normalizes expr and splits it into tokens.
func (c *Calculator) Tokenize(expr string) []Token {
	return c.lexicon.Tokenize(Normalize(expr))
}

// Postfix returns expr in evaluation order.
func (c *Calculator) Postfix(expr string) ([]Element, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, withHint(parseErrorf("пустая строка, ожидается выражение"),
			"например: «двадцать пять плюс тринадцать»")
	}
	tokens := c.Tokenize(expr)
	c.log.Debug("tokenized", zap.Stringers("tokens", tokens))

	elems, err := c.lexicon.buildPostfix(tokens)
	if err != nil {
		return nil, err
	}
	c.log.Debug("postfix built", zap.String("postfix", FormatPostfix(elems)))
	return elems, nil
}

// EvaluateRat evaluates expr and returns the exact (or bounded) result.
func (c *Calculator) EvaluateRat(expr string) (*big.Rat, error) {
	elems, err := c.Postfix(expr)
	if err != nil {
		c.log.Debug("evaluation failed", zap.String("expr", expr), zap.Error(err))
		return nil, err
	}
	v, err := evaluatePostfix(elems)
	if err != nil {
		c.log.Debug("evaluation failed", zap.String("expr", expr), zap.Error(err))
		return nil, err
	}
	c.log.Debug("evaluated", zap.String("expr", expr), zap.String("value", v.RatString()))
	return v, nil
}

// Evaluate evaluates expr and spells the result in words. The returned
// error, if any, is an *Error of KindParse or KindMath.
func (c *Calculator) Evaluate(expr string) (string, error) {
	v, err := c.EvaluateRat(expr)
	if err != nil {
		return "", err
	}
	return Render(v), nil
}

var defaultCalculator = sync.OnceValue(func() *Calculator { return New() })

// Evaluate evaluates expr with the embedded lexicon.
func Evaluate(expr string) (string, error) {
	return defaultCalculator().Evaluate(expr)
}

package rucalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostfix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"двадцать пять плюс тринадцать", "25 13 +"},
		{"пять плюс два умножить на три", "5 2 3 * +"},
		{"скобка открывается пять плюс два скобка закрывается умножить на три", "5 2 + 3 *"},
		{"десять минус три минус два", "10 3 - 2 -"},
		{"два в степени три в степени два", "2 3 2 ^ ^"},
		{"минус семь остаток от деления три", "7 neg 3 %"},
		{"пять минус минус один", "5 1 neg -"},
		{"два в степени минус один", "2 1 neg ^"},
		{"синус от ноль плюс один", "0 sin 1 +"},
		{"синус от минус один", "1 neg sin"},
		{"синус от скобка открывается один плюс два скобка закрывается", "1 2 + sin"},
		{"сочетаний из пять по три", "combinations(5,3)"},
		{"перестановок из пять", "permutations(5)"},
		{"десять минус размещений из пять по два", "10 arrangements(5,2) -"},
		{"сочетаний из десять по два умножить на два", "combinations(10,2) 2 *"},
		{"один и пять десятых плюс пи", "3/2 3126535/995207 +"},
	}
	c := New()
	for _, tt := range tests {
		elems, err := c.Postfix(tt.in)
		if !assert.NoError(t, err, "Postfix(%q)", tt.in) {
			continue
		}
		assert.Equal(t, tt.want, FormatPostfix(elems), "Postfix(%q)", tt.in)
	}
}

func TestPostfixErrors(t *testing.T) {
	tests := []string{
		"",
		"скобка открывается пять плюс два",
		"пять плюс два скобка закрывается",
		"сочетаний из пять",
		"размещений из пять три",
		"сочетаний из",
		"сочетаний из пять по",
		"сочетаний из пять штук по три",
		"пять плюс абракадабра",
	}
	c := New()
	for _, in := range tests {
		_, err := c.Postfix(in)
		assert.True(t, IsParseError(err), "Postfix(%q) error = %v", in, err)
	}
}

func TestCombinatoricsHint(t *testing.T) {
	_, err := New().Postfix("сочетаний из пять")
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Hint(), "сочетаний из пять по три")
	assert.Contains(t, e.Error(), "сочетаний")
}

func TestOperatorYields(t *testing.T) {
	add, _ := LookupOperator(OpAdd)
	mul, _ := LookupOperator(OpMul)
	pow, _ := LookupOperator(OpPow)
	neg, _ := LookupOperator(OpNeg)

	assert.True(t, add.yields(add))
	assert.True(t, add.yields(mul))
	assert.False(t, mul.yields(add))
	assert.False(t, pow.yields(pow))
	assert.True(t, pow.yields(neg))
	assert.True(t, neg.Unary)

	_, ok := LookupOperator("&")
	assert.False(t, ok)
}

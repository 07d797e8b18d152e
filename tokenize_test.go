package rucalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Двадцать Пять", "двадцать пять"},
		{"  пять\tплюс\n два  ", "пять плюс два"},
		{"четвёртых", "четвертых"},
		{"два умножить на π", "два умножить на пи"},
		{"2π", "2 пи"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	lx := DefaultLexicon()
	tests := []struct {
		in   string
		want []Token
	}{
		{
			"двадцать пять плюс тринадцать",
			[]Token{{TokenWord, "двадцать"}, {TokenWord, "пять"}, {TokenOp, "+"}, {TokenWord, "тринадцать"}},
		},
		{
			"семь остаток от деления три",
			[]Token{{TokenWord, "семь"}, {TokenOp, "%"}, {TokenWord, "три"}},
		},
		{
			"пять умножить на два",
			[]Token{{TokenWord, "пять"}, {TokenOp, "*"}, {TokenWord, "два"}},
		},
		{
			"скобка открывается один скобка закрывается",
			[]Token{{TokenLParen, "("}, {TokenWord, "один"}, {TokenRParen, ")"}},
		},
		{
			"синус от пи",
			[]Token{{TokenFunc, "sin"}, {TokenConst, "пи"}},
		},
		{
			"сочетаний из пять по три",
			[]Token{{TokenComb, "combinations"}, {TokenWord, "пять"}, {TokenWord, "по"}, {TokenWord, "три"}},
		},
		{
			"два в степени остаток",
			[]Token{{TokenWord, "два"}, {TokenOp, "^"}, {TokenWord, "остаток"}},
		},
		{"", []Token{}},
	}
	for _, tt := range tests {
		got := lx.Tokenize(Normalize(tt.in))
		assert.Equal(t, tt.want, got, "Tokenize(%q)", tt.in)
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "OP(%)", Token{TokenOp, "%"}.String())
	assert.Equal(t, "WORD(пять)", Token{TokenWord, "пять"}.String())
	assert.Equal(t, "LPAREN", TokenLParen.String())
}

package rucalc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "ноль"},
		{7, "семь"},
		{13, "тринадцать"},
		{20, "двадцать"},
		{38, "тридцать восемь"},
		{100, "сто"},
		{512, "пятьсот двенадцать"},
		{1000, "один тысяча"},
		{2000, "два тысячи"},
		{5000, "пять тысяч"},
		{11000, "одиннадцать тысяч"},
		{21000, "двадцать один тысяча"},
		{1428, "один тысяча четыреста двадцать восемь"},
		{1_000_000, "один миллион"},
		{3_000_000, "три миллиона"},
		{12_000_005, "двенадцать миллионов пять"},
		{1_200_000, "один миллион двести тысяч"},
		{-42, "минус сорок два"},
	}
	for _, tt := range tests {
		if got := IntegerWords(big.NewInt(tt.n)); got != tt.want {
			t.Errorf("IntegerWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIntegerWordsLarge(t *testing.T) {
	n, _ := new(big.Int).SetString("2000000000000", 10)
	assert.Equal(t, "два миллиона миллионов", IntegerWords(n))
}

func TestRender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"38", "тридцать восемь"},
		{"-6", "минус шесть"},
		{"0", "ноль"},
		{"1/3", "ноль и ноль и три в периоде"},
		{"1/6", "ноль и один и шесть в периоде"},
		{"1/7", "ноль и ноль и один тысяча четыреста двадцать восемь в периоде"},
		{"5/12", "ноль и сорок один и шесть в периоде"},
		{"4/3", "один и ноль и три в периоде"},
		{"7/100", "ноль и семь сотых"},
		{"307/100", "три и семь сотых"},
		{"3/1000", "ноль и три тысячных"},
		{"3/1000000", "ноль и три миллионных"},
		{"5/2", "два и один вторых"},
		{"3/8", "три восемь-ых"},
		{"-1/2", "минус один вторых"},
		{"2/5", "два пятых"},
		{"7/5", "один и два пятых"},
		{"1/23", "один двадцать три-ых"},
		{"1/25", "один двадцать пять-ых"},
	}
	for _, tt := range tests {
		if got := Render(rat(tt.in)); got != tt.want {
			t.Errorf("Render(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	r := big.NewRat(-5, 2)
	Render(r)
	assert.Equal(t, "-5/2", r.RatString())
}

func TestPluralForms(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "тысяча"},
		{2, "тысячи"},
		{4, "тысячи"},
		{5, "тысяч"},
		{11, "тысяч"},
		{14, "тысяч"},
		{21, "тысяча"},
		{22, "тысячи"},
		{100, "тысяч"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, thousandForms.pick(tt.n%100), "pick(%d)", tt.n)
	}
}

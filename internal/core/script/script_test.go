package script

import (
	"math"
	"testing"
)

func TestClassifyCountsByCategory(t *testing.T) {
	p := Classify("abcこんにちはカナ漢字한글مرحباпривет123!?")

	want := map[Category]int{
		Latin:    3,
		Hiragana: 5,
		Katakana: 2,
		Han:      2,
		Hangul:   2,
		Arabic:   5,
		Cyrillic: 6,
		Digit:    3,
		Other:    2,
	}
	for c, n := range want {
		if got := p.Counts[c]; got != n {
			t.Fatalf("category %s: got %d want %d", c, got, n)
		}
	}
	if p.Total != 30 {
		t.Fatalf("total: got %d want 30", p.Total)
	}
}

func TestClassifySkipsWhitespaceAndControls(t *testing.T) {
	p := Classify(" \t\n\r abc  ")
	if p.Total != 3 {
		t.Fatalf("total: got %d want 3", p.Total)
	}
	if p.Counts[Latin] != 3 {
		t.Fatalf("latin: got %d want 3", p.Counts[Latin])
	}
}

func TestRatiosSumToOne(t *testing.T) {
	p := Classify("hello 世界 123")
	sum := 0.0
	for _, v := range p.Ratios() {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("ratios sum to %v, want 1.0", sum)
	}
}

func TestEmptyProfileIsAllZero(t *testing.T) {
	p := Classify("   \n\t ")
	if p.Total != 0 {
		t.Fatalf("total: got %d want 0", p.Total)
	}
	for name, v := range p.Ratios() {
		if v != 0 {
			t.Fatalf("ratio %s: got %v want 0", name, v)
		}
	}
}

func TestOfPlacesCJKPunctInOther(t *testing.T) {
	// Ideographic full stop and corner brackets are shared CJK punctuation
	for _, r := range "。「」" {
		if got := Of(r); got != Other {
			t.Fatalf("Of(%q): got %s want other", r, got)
		}
	}
	if Of('ア') != Katakana {
		t.Fatalf("Of('ア'): got %s want katakana", Of('ア'))
	}
}

package cues

import (
	"testing"
)

func mustPack(t *testing.T) *Pack {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("load cues: %v", err)
	}
	return p
}

func TestLoadShipsAllSixLanguages(t *testing.T) {
	p := mustPack(t)
	want := []string{"arabic", "chinese", "english", "japanese", "korean", "russian"}
	if len(p.Languages) != len(want) {
		t.Fatalf("languages: got %d want %d", len(p.Languages), len(want))
	}
	for i, lc := range p.Languages {
		if lc.Lang != want[i] {
			t.Fatalf("languages[%d]: got %s want %s", i, lc.Lang, want[i])
		}
		if len(lc.Tokens) == 0 {
			t.Fatalf("%s: empty token set", lc.Lang)
		}
	}
}

func TestWordHitsCountWholeTokensOnly(t *testing.T) {
	p := mustPack(t)
	if got := p.Hits("english", "the cat sat on the mat"); got != 3 {
		t.Fatalf("hits: got %d want 3", got)
	}
	// "theory" and "onto" must not count
	if got := p.Hits("english", "theory onto atlas"); got != 0 {
		t.Fatalf("hits: got %d want 0", got)
	}
}

func TestSubstrHitsCountOccurrences(t *testing.T) {
	p := mustPack(t)
	// は and に occur inside こんにちは
	if got := p.Hits("japanese", "こんにちは"); got < 2 {
		t.Fatalf("hits: got %d want >= 2", got)
	}
	if got := p.Hits("japanese", "hello world"); got != 0 {
		t.Fatalf("hits: got %d want 0", got)
	}
}

func TestNormalizedHitsClampedToUnit(t *testing.T) {
	p := mustPack(t)
	// single token, multiple substring hits
	v := p.NormalizedHits("japanese", "これはペンです")
	if v < 0 || v > 1 {
		t.Fatalf("normalized hits out of range: %v", v)
	}
	if p.NormalizedHits("english", "") != 0 {
		t.Fatalf("empty text must yield 0")
	}
}

func TestScriptWeightDefaultsToOne(t *testing.T) {
	p := mustPack(t)
	if w := p.ScriptWeight("japanese"); w != 1.5 {
		t.Fatalf("japanese weight: got %v want 1.5", w)
	}
	if w := p.ScriptWeight("klingon"); w != 1.0 {
		t.Fatalf("unknown weight: got %v want 1.0", w)
	}
}

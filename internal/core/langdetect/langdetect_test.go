package langdetect

import (
	"math"
	"reflect"
	"testing"

	"polyglot/internal/core/cues"
)

func mustDetector(t *testing.T) *Detector {
	t.Helper()
	p, err := cues.Load()
	if err != nil {
		t.Fatalf("load cues: %v", err)
	}
	return New(p, 1)
}

func scoreOf(t *testing.T, res Result, lang Language) float64 {
	t.Helper()
	for _, s := range res.Scores {
		if s.Lang == lang {
			return s.Score
		}
	}
	t.Fatalf("no score for %s", lang)
	return 0
}

func TestDetectEnglishSentence(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("the quick brown fox jumps")
	if res.Language != English {
		t.Fatalf("language: got %s want english", res.Language)
	}
	if res.IsMixed {
		t.Fatalf("unexpected mixed")
	}
	if res.Confidence <= 0.7 {
		t.Fatalf("confidence: got %v want > 0.7", res.Confidence)
	}
}

func TestDetectJapaneseGreeting(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("こんにちは")
	if res.Language != Japanese {
		t.Fatalf("language: got %s want japanese", res.Language)
	}
	if res.Confidence <= 0.8 {
		t.Fatalf("confidence: got %v want > 0.8", res.Confidence)
	}
}

func TestDetectPureHanIsChinese(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("你好世界")
	if res.Language != Chinese {
		t.Fatalf("language: got %s want chinese", res.Language)
	}
	if res.IsMixed {
		t.Fatalf("unexpected mixed")
	}
}

func TestKanaPullsHanToJapanese(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("日本語の文章です")
	if res.Language != Japanese {
		t.Fatalf("language: got %s want japanese", res.Language)
	}
}

func TestDetectMixedJapaneseEnglish(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("こんにちは hello everyone")
	if res.Language != Mixed || !res.IsMixed {
		t.Fatalf("language: got %s (mixed=%v) want mixed", res.Language, res.IsMixed)
	}
	if res.Primary != English || res.Secondary != Japanese {
		t.Fatalf("components: got %s/%s want english/japanese", res.Primary, res.Secondary)
	}
	if res.Confidence <= 0 {
		t.Fatalf("confidence: got %v want > 0", res.Confidence)
	}
}

func TestDetectKoreanArabicRussian(t *testing.T) {
	d := mustDetector(t)
	cases := []struct {
		text string
		want Language
	}{
		{"안녕하세요 반갑습니다", Korean},
		{"مرحبا بالعالم في السلام", Arabic},
		{"привет как дела сегодня", Russian},
	}
	for _, tc := range cases {
		res := d.Detect(tc.text)
		if res.Language != tc.want {
			t.Fatalf("%q: got %s want %s", tc.text, res.Language, tc.want)
		}
	}
}

func TestDetectEmptyIsUnknown(t *testing.T) {
	d := mustDetector(t)
	for _, text := range []string{"", "   \t\n  "} {
		res := d.Detect(text)
		if res.Language != Unknown {
			t.Fatalf("%q: got %s want unknown", text, res.Language)
		}
		if res.Confidence != 0 {
			t.Fatalf("%q: confidence got %v want 0", text, res.Confidence)
		}
		for name, v := range res.Scripts {
			if v != 0 {
				t.Fatalf("%q: script %s got %v want 0", text, name, v)
			}
		}
	}
}

func TestDetectSymbolsOnlyIsUnknown(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("!!! ??? ...")
	if res.Language != Unknown {
		t.Fatalf("language: got %s want unknown", res.Language)
	}
	if res.Confidence != 0 {
		t.Fatalf("confidence: got %v want 0", res.Confidence)
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	d := mustDetector(t)
	text := "こんにちは hello 你好 привет 123"
	a := d.Detect(text)
	b := d.Detect(text)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input, different results:\n%+v\n%+v", a, b)
	}
}

func TestScriptBreakdownSumsToOne(t *testing.T) {
	d := mustDetector(t)
	res := d.Detect("hello 世界 123 مرحبا")
	sum := 0.0
	for _, v := range res.Scripts {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("breakdown sums to %v, want 1.0", sum)
	}
}

func TestScoreMonotoneInScriptShare(t *testing.T) {
	d := mustDetector(t)
	lo := scoreOf(t, d.Detect("ab こんにちは"), English)
	hi := scoreOf(t, d.Detect("abcdef こんにちは"), English)
	if hi <= lo {
		t.Fatalf("english score did not grow with latin share: %v -> %v", lo, hi)
	}
}

func TestMaxRunesCapsInput(t *testing.T) {
	p, err := cues.Load()
	if err != nil {
		t.Fatalf("load cues: %v", err)
	}
	opts := DefaultOptions()
	opts.MaxRunes = 5
	d := NewWithOptions(p, 1, opts)

	capped := d.Detect("こんにちは你好世界")
	full := NewWithOptions(p, 1, DefaultOptions()).Detect("こんにちは")
	if !reflect.DeepEqual(capped, full) {
		t.Fatalf("cap mismatch:\n%+v\n%+v", capped, full)
	}
}

func TestResultCarriesDetectorVersion(t *testing.T) {
	p, err := cues.Load()
	if err != nil {
		t.Fatalf("load cues: %v", err)
	}
	d := New(p, 7)
	if got := d.Detect("hello").DetectorVersion; got != 7 {
		t.Fatalf("version: got %d want 7", got)
	}
}

package exportfile

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	got := CleanText("  hello\t\nworld\x00  ")
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if CleanText("") != "" {
		t.Fatal("empty stays empty")
	}
}

func TestHashtagsMixedScripts(t *testing.T) {
	tags := Hashtags("launch day #golang #日本語 #テスト text")
	if len(tags) != 3 || tags[0] != "golang" || tags[1] != "日本語" || tags[2] != "テスト" {
		t.Fatalf("tags = %v", tags)
	}
}

func TestMentionsAndURLs(t *testing.T) {
	ms := Mentions("cc @alice and @bob_42")
	if len(ms) != 2 || ms[0] != "alice" || ms[1] != "bob_42" {
		t.Fatalf("mentions = %v", ms)
	}

	us := URLs("see https://example.com/a and http://example.org")
	if len(us) != 2 || !strings.HasPrefix(us[0], "https://example.com") {
		t.Fatalf("urls = %v", us)
	}
}

func TestExtractorCaps(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString("#tag ")
	}
	if got := Hashtags(sb.String()); len(got) != maxHashtags {
		t.Fatalf("hashtags = %d, want cap %d", len(got), maxHashtags)
	}
}

func TestTextStats(t *testing.T) {
	st := TextStats("one two three.")
	if st.Words != 3 || st.Sentences != 1 || st.Chars != 14 {
		t.Fatalf("stats = %+v", st)
	}

	st = TextStats("今日は楽しかった。また明日！")
	if st.Sentences != 2 {
		t.Fatalf("cjk sentences = %d", st.Sentences)
	}

	if TextStats("") != (Stats{}) {
		t.Fatal("empty stats")
	}
}

func TestIsLikelySpam(t *testing.T) {
	if !IsLikelySpam("BUY NOW BUY NOW BUY NOW BUY NOW!!!") {
		t.Fatal("expected spam")
	}
	if IsLikelySpam("just shipped a new release, feedback welcome") {
		t.Fatal("expected ham")
	}
	if IsLikelySpam("") {
		t.Fatal("empty is not spam")
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{nil, 0},
		{float64(42), 42},
		{"1,234", 1234},
		{" 7 ", 7},
		{"n/a", 0},
		{true, 0},
	}
	for _, c := range cases {
		if got := parseCount(c.in); got != c.want {
			t.Fatalf("parseCount(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

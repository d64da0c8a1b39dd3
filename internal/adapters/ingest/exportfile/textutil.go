package exportfile

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Caps mirror the exporter limits so a hostile file cannot blow up memory
const (
	scanCap     = 10000 // runes considered by the extractors
	maxHashtags = 50
	maxMentions = 50
	maxURLs     = 20
)

var (
	spaceRe   = regexp.MustCompile(`\s+`)
	hashtagRe = regexp.MustCompile(`#([\w\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]{1,100})`)
	mentionRe = regexp.MustCompile(`@(\w{1,50})`)
	urlRe     = regexp.MustCompile(`https?://\S{1,500}`)
	spamRe    = regexp.MustCompile(`click\s+here|buy\s+now|limited\s+time|act\s+fast|free\s+money|make\s+money\s+fast`)
)

// CleanText collapses whitespace and strips control characters
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	cleaned := spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return -1
		}
		return r
	}, cleaned)
}

// Hashtags returns up to maxHashtags tags without the # symbol
func Hashtags(text string) []string {
	return capped(hashtagRe.FindAllStringSubmatch(capRunes(text), -1), maxHashtags)
}

// Mentions returns up to maxMentions usernames without the @ symbol
func Mentions(text string) []string {
	return capped(mentionRe.FindAllStringSubmatch(capRunes(text), -1), maxMentions)
}

// URLs returns up to maxURLs http(s) links
func URLs(text string) []string {
	matches := urlRe.FindAllString(capRunes(text), -1)
	if len(matches) > maxURLs {
		matches = matches[:maxURLs]
	}
	return matches
}

// Stats are cheap per-post text statistics
type Stats struct {
	Chars         int
	Words         int
	Sentences     int
	AvgWordLength float64
}

var sentenceRe = regexp.MustCompile(`[.!?。！？]`)

// TextStats computes basic statistics over the cleaned text
func TextStats(text string) Stats {
	if text == "" {
		return Stats{}
	}
	words := strings.Fields(text)
	st := Stats{
		Chars:     len([]rune(text)),
		Words:     len(words),
		Sentences: len(sentenceRe.FindAllString(text, -1)),
	}
	if st.Sentences == 0 && strings.TrimSpace(text) != "" {
		st.Sentences = 1
	}
	if st.Words > 0 {
		total := 0
		for _, w := range words {
			total += len([]rune(w))
		}
		st.AvgWordLength = float64(total) / float64(st.Words)
	}
	return st
}

// IsLikelySpam scores simple spam signals; above 0.5 flags the post
func IsLikelySpam(text string) bool {
	if text == "" {
		return false
	}
	score := 0.0

	runes := []rune(text)
	if len(runes) > 10 {
		upper := 0
		for _, r := range runes {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(len(runes)) > 0.7 {
			score += 0.3
		}
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) > 3 {
		uniq := map[string]struct{}{}
		for _, w := range words {
			uniq[w] = struct{}{}
		}
		if 1-float64(len(uniq))/float64(len(words)) > 0.5 {
			score += 0.4
		}
	}

	punct := 0
	for _, r := range runes {
		if strings.ContainsRune("!?.,;:", r) {
			punct++
		}
	}
	if len(runes) > 0 && float64(punct)/float64(len(runes)) > 0.3 {
		score += 0.2
	}

	if spamRe.MatchString(strings.ToLower(text)) {
		score += 0.3
	}

	return score > 0.5
}

// parseCount accepts numbers, numeric strings, and "1,234" style strings
func parseCount(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return int64(n)
	case int64:
		return n
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return 0
		}
		out, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		return out
	default:
		return 0
	}
}

func capRunes(s string) string {
	r := []rune(s)
	if len(r) > scanCap {
		return string(r[:scanCap])
	}
	return s
}

func capped(matches [][]string, max int) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
		if len(out) == max {
			break
		}
	}
	return out
}

// Package textstat extracts entities and surface statistics from post text.
// All extractors cap input length and result counts so hostile text stays cheap
package textstat

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxScanBytes = 40960 // ~10k runes of worst-case UTF-8
	maxTags      = 50
	maxMentions  = 50
	maxURLs      = 20
)

var (
	tagRe     = regexp.MustCompile(`#([\p{L}\p{N}_]{1,100})`)
	mentionRe = regexp.MustCompile(`@(\w{1,50})`)
	urlRe     = regexp.MustCompile(`https?://\S{1,500}`)
	domainRe  = regexp.MustCompile(`^https?://([^/\s]+)`)
	wordRe    = regexp.MustCompile(`[^\w]`)
)

func clip(s string) string {
	if len(s) > maxScanBytes {
		return s[:maxScanBytes]
	}
	return s
}

// Hashtags returns tag bodies without the leading '#'
func Hashtags(s string) []string {
	return capture(tagRe, clip(s), maxTags)
}

// Mentions returns mentioned handles without the leading '@'
func Mentions(s string) []string {
	return capture(mentionRe, clip(s), maxMentions)
}

// URLs returns http(s) URLs found in s
func URLs(s string) []string {
	if s == "" {
		return nil
	}
	return urlRe.FindAllString(clip(s), maxURLs)
}

// Domain returns the host part of an http(s) URL, empty when absent
func Domain(url string) string {
	m := domainRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// NormalizeHandle strips '@', lowercases and drops non-word runes
func NormalizeHandle(h string) string {
	h = strings.TrimLeft(h, "@")
	return wordRe.ReplaceAllString(strings.ToLower(h), "")
}

func capture(re *regexp.Regexp, s string, limit int) []string {
	if s == "" {
		return nil
	}
	ms := re.FindAllStringSubmatch(s, limit)
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m[1])
	}
	return out
}

// Stats are surface counts over raw post text
type Stats struct {
	Chars       int     `json:"chars"`
	Words       int     `json:"words"`
	Sentences   int     `json:"sentences"`
	Lines       int     `json:"lines"`
	AvgWordLen  float64 `json:"avg_word_len"`
}

// Calc computes Stats for s. Sentence count is a rough estimate over
// Latin and CJK terminators; non-empty text counts at least one sentence
func Calc(s string) Stats {
	var st Stats
	if s == "" {
		return st
	}

	st.Chars = len([]rune(s))
	words := strings.Fields(s)
	st.Words = len(words)

	for _, r := range s {
		switch r {
		case '.', '!', '?', '。', '！', '？':
			st.Sentences++
		}
	}
	if st.Sentences == 0 && strings.TrimSpace(s) != "" {
		st.Sentences = 1
	}

	st.Lines = len(strings.Split(strings.TrimRight(s, "\n"), "\n"))

	if st.Words > 0 {
		total := 0
		for _, w := range words {
			total += len([]rune(w))
		}
		st.AvgWordLen = float64(total) / float64(st.Words)
	}
	return st
}

// SpamSignal is the outcome of the cheap spam heuristic
type SpamSignal struct {
	Spam    bool     `json:"spam"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

var spamPhrases = []string{
	"click here", "buy now", "limited time", "act fast", "free money",
}

// Spam scores obvious low-effort spam: shouting, heavy repetition,
// punctuation walls and bait phrases. Score is capped at 1; > 0.5 flags spam
func Spam(s string) SpamSignal {
	var sig SpamSignal
	if s == "" {
		return sig
	}

	runes := []rune(s)
	if len(runes) > 10 {
		upper := 0
		for _, r := range runes {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(len(runes)) > 0.7 {
			sig.Reasons = append(sig.Reasons, "excessive_caps")
			sig.Score += 0.3
		}
	}

	words := strings.Fields(strings.ToLower(s))
	if len(words) > 3 {
		uniq := make(map[string]struct{}, len(words))
		for _, w := range words {
			uniq[w] = struct{}{}
		}
		if 1-float64(len(uniq))/float64(len(words)) > 0.5 {
			sig.Reasons = append(sig.Reasons, "excessive_repetition")
			sig.Score += 0.4
		}
	}

	punct := 0
	for _, r := range runes {
		if strings.ContainsRune("!?.,;:", r) {
			punct++
		}
	}
	if float64(punct)/float64(len(runes)) > 0.3 {
		sig.Reasons = append(sig.Reasons, "excessive_punctuation")
		sig.Score += 0.2
	}

	lower := strings.ToLower(s)
	for _, p := range spamPhrases {
		if strings.Contains(lower, p) {
			sig.Reasons = append(sig.Reasons, "bait_phrase:"+p)
			sig.Score += 0.3
		}
	}

	if sig.Score > 1 {
		sig.Score = 1
	}
	sig.Spam = sig.Score > 0.5
	return sig
}

// Package cues loads the embedded v1 cues.json and matches lexical cue tokens.
// Each language carries a small set of function words in its own script; the
// loader rejects a token that appears under two languages
package cues

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed cues.json
var embedded []byte

// MatchMode selects how a language's tokens are counted
type MatchMode string

const (
	// MatchWord counts whole-token matches over whitespace-split text
	MatchWord MatchMode = "word"
	// MatchSubstr counts substring occurrences (no word boundaries in CJK)
	MatchSubstr MatchMode = "substr"
)

type rawLangV1 struct {
	Lang         string   `json:"lang"`
	Match        string   `json:"match"`
	ScriptWeight float64  `json:"script_weight"`
	Tokens       []string `json:"tokens"`
}

type rawPackV1 struct {
	Version   int            `json:"version"`
	Meta      map[string]any `json:"meta"`
	Languages []rawLangV1    `json:"languages"`
}

// LangCues is one language's compiled cue table
type LangCues struct {
	Lang         string
	Match        MatchMode
	ScriptWeight float64
	Tokens       []string
}

// Pack is the compiled cue pack
type Pack struct {
	Version   int
	Meta      map[string]any
	Languages []LangCues

	byLang   map[string]*LangCues
	wordSets map[string]map[string]struct{}
}

// Load returns the compiled pack from the embedded v1 cues.json
func Load() (*Pack, error) {
	var rp rawPackV1
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("cues: parse cues.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("cues: unsupported cues.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:  rp.Version,
		Meta:     rp.Meta,
		byLang:   make(map[string]*LangCues, len(rp.Languages)),
		wordSets: make(map[string]map[string]struct{}, len(rp.Languages)),
	}

	owner := make(map[string]string, 128) // token -> lang, for exclusivity

	for _, rl := range rp.Languages {
		lang := strings.ToLower(strings.TrimSpace(rl.Lang))
		if lang == "" {
			return nil, fmt.Errorf("cues: language entry with empty lang")
		}
		if _, dup := p.byLang[lang]; dup {
			return nil, fmt.Errorf("cues: duplicate language %q", lang)
		}

		mode := MatchMode(rl.Match)
		if mode != MatchWord && mode != MatchSubstr {
			return nil, fmt.Errorf("cues: %s: unknown match mode %q", lang, rl.Match)
		}

		w := rl.ScriptWeight
		if w <= 0 {
			w = 1.0
		}

		lc := LangCues{Lang: lang, Match: mode, ScriptWeight: w}
		seen := make(map[string]struct{}, len(rl.Tokens))
		for _, tok := range rl.Tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			if prev, taken := owner[tok]; taken {
				return nil, fmt.Errorf("cues: token %q claimed by both %s and %s", tok, prev, lang)
			}
			owner[tok] = lang
			seen[tok] = struct{}{}
			lc.Tokens = append(lc.Tokens, tok)
		}
		sort.Strings(lc.Tokens)

		p.Languages = append(p.Languages, lc)
		if mode == MatchWord {
			p.wordSets[lang] = seen
		}
	}

	// Deterministic iteration for the aggregator and tests
	sort.Slice(p.Languages, func(i, j int) bool { return p.Languages[i].Lang < p.Languages[j].Lang })
	for i := range p.Languages {
		p.byLang[p.Languages[i].Lang] = &p.Languages[i]
	}

	return p, nil
}

// ScriptWeight returns the language's script weight, 1.0 when unknown
func (p *Pack) ScriptWeight(lang string) float64 {
	if lc, ok := p.byLang[lang]; ok {
		return lc.ScriptWeight
	}
	return 1.0
}

// Hits counts cue occurrences for lang in normalized text
func (p *Pack) Hits(lang, text string) int {
	lc, ok := p.byLang[lang]
	if !ok || text == "" {
		return 0
	}
	switch lc.Match {
	case MatchWord:
		set := p.wordSets[lang]
		n := 0
		for _, f := range strings.Fields(text) {
			if _, hit := set[f]; hit {
				n++
			}
		}
		return n
	default:
		n := 0
		for _, tok := range lc.Tokens {
			n += strings.Count(text, tok)
		}
		return n
	}
}

// NormalizedHits divides Hits by the whitespace token count and clamps to [0,1]
// so the lexical term stays bounded like the script term
func (p *Pack) NormalizedHits(lang, text string) float64 {
	toks := len(strings.Fields(text))
	if toks == 0 {
		return 0
	}
	v := float64(p.Hits(lang, text)) / float64(toks)
	if v > 1 {
		v = 1
	}
	return v
}

// Package langdetect scores languages over script profiles and lexical cues
// and resolves a single, mixed, or unknown label with a calibrated confidence
package langdetect

import (
	"sort"
	"unicode/utf8"

	"polyglot/internal/core/cues"
	"polyglot/internal/core/script"
)

// Language is a detection label
type Language string

// Labels emitted by Detect. Candidates are the six scored languages;
// Mixed and Unknown are resolver outcomes only
const (
	Japanese Language = "japanese"
	English  Language = "english"
	Chinese  Language = "chinese"
	Korean   Language = "korean"
	Arabic   Language = "arabic"
	Russian  Language = "russian"
	Mixed    Language = "mixed"
	Unknown  Language = "unknown"
)

// Options controls scoring and resolution.
// A Detector copies its Options at construction; they never change afterwards
type Options struct {
	// ScriptWeight and LexicalWeight blend the two score terms
	ScriptWeight  float64
	LexicalWeight float64
	// MixThreshold: (top-second)/top below this resolves to mixed
	MixThreshold float64
	// Epsilon keeps the single-label confidence quotient finite
	Epsilon float64
	// MaxRunes caps input length before classification (0 = no cap)
	MaxRunes int
	// HanSoloFactor is Han's contribution to the Japanese ratio without kana
	HanSoloFactor float64
	// HanKanaFactor is Han's contribution to the Chinese ratio when kana is present
	HanKanaFactor float64
}

// DefaultOptions returns the shipped scoring parameters
func DefaultOptions() Options {
	return Options{
		ScriptWeight:  0.7,
		LexicalWeight: 0.3,
		MixThreshold:  0.25,
		Epsilon:       1e-9,
		MaxRunes:      10000,
		HanSoloFactor: 0.3,
		HanKanaFactor: 0.2,
	}
}

// Score is one candidate's blended score plus its raw script ratio
type Score struct {
	Lang        Language `json:"lang"`
	Score       float64  `json:"score"`
	ScriptRatio float64  `json:"script_ratio"`
}

// Result is the full outcome of one detection.
// Language is the headline label and becomes "mixed" when IsMixed;
// Primary and Secondary then name the two components
type Result struct {
	Language        Language           `json:"language"`
	Primary         Language           `json:"primary"`
	Secondary       Language           `json:"secondary,omitempty"`
	IsMixed         bool               `json:"is_mixed"`
	Confidence      float64            `json:"confidence"`
	Scores          []Score            `json:"scores"`
	Scripts         map[string]float64 `json:"script_breakdown"`
	DetectorVersion int                `json:"detector_version"`
}

// Detector is a pure function over text; safe for concurrent use
type Detector struct {
	pack    *cues.Pack
	opts    Options
	version int
}

// New creates a Detector with default options
func New(p *cues.Pack, detectorVersion int) *Detector {
	return NewWithOptions(p, detectorVersion, DefaultOptions())
}

// NewWithOptions creates a Detector with custom options
func NewWithOptions(p *cues.Pack, detectorVersion int, opts Options) *Detector {
	return &Detector{pack: p, opts: opts, version: detectorVersion}
}

// Version returns the detector version stamped on results
func (d *Detector) Version() int { return d.version }

// Detect labels normalized text. Same input always yields the same Result
func (d *Detector) Detect(text string) Result {
	text = d.cap(text)
	prof := script.Classify(text)

	res := Result{
		Scripts:         prof.Ratios(),
		DetectorVersion: d.version,
	}

	if prof.Total == 0 {
		res.Language = Unknown
		res.Primary = Unknown
		return res
	}

	res.Scores = d.scoreAll(text, prof)
	d.resolve(&res)
	return res
}

// cap truncates at a rune boundary when the input exceeds MaxRunes
func (d *Detector) cap(s string) string {
	if d.opts.MaxRunes <= 0 || utf8.RuneCountInString(s) <= d.opts.MaxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == d.opts.MaxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// scoreAll blends script ratio and lexical hits for every pack language,
// sorted best-first with a deterministic tie-break
func (d *Detector) scoreAll(text string, prof script.Profile) []Score {
	out := make([]Score, 0, len(d.pack.Languages))
	for _, lc := range d.pack.Languages {
		lang := Language(lc.Lang)
		ratio := d.scriptRatio(lang, prof)
		s := d.opts.ScriptWeight*lc.ScriptWeight*ratio +
			d.opts.LexicalWeight*d.pack.NormalizedHits(lc.Lang, text)
		out = append(out, Score{Lang: lang, Score: s, ScriptRatio: ratio})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].ScriptRatio != out[j].ScriptRatio {
			return out[i].ScriptRatio > out[j].ScriptRatio
		}
		return out[i].Lang < out[j].Lang
	})
	return out
}

// scriptRatio maps a candidate to its share of classifiable runes.
// Han splits between Japanese and Chinese on kana presence: any kana pulls
// Han toward Japanese, no kana leaves Han to Chinese
func (d *Detector) scriptRatio(lang Language, p script.Profile) float64 {
	total := float64(p.Total)
	kana := p.Kana()
	switch lang {
	case Japanese:
		han := float64(p.Counts[script.Han])
		if kana == 0 {
			han *= d.opts.HanSoloFactor
		}
		return (float64(kana) + han) / total
	case Chinese:
		han := float64(p.Counts[script.Han])
		if kana > 0 {
			han *= d.opts.HanKanaFactor
		}
		return han / total
	case English:
		return p.Ratio(script.Latin)
	case Korean:
		return p.Ratio(script.Hangul)
	case Arabic:
		return p.Ratio(script.Arabic)
	case Russian:
		return p.Ratio(script.Cyrillic)
	default:
		return 0
	}
}

// resolve picks the label and calibrates confidence from the sorted scores
func (d *Detector) resolve(res *Result) {
	top := res.Scores[0]
	if top.Score == 0 {
		res.Language = Unknown
		res.Primary = Unknown
		return
	}

	var second Score
	if len(res.Scores) > 1 {
		second = res.Scores[1]
	}

	margin := (top.Score - second.Score) / top.Score
	if second.Score > 0 && margin < d.opts.MixThreshold {
		res.Language = Mixed
		res.Primary = top.Lang
		res.Secondary = second.Lang
		res.IsMixed = true
		res.Confidence = 1 - margin
		return
	}

	res.Language = top.Lang
	res.Primary = top.Lang
	res.Confidence = top.Score / (top.Score + second.Score + d.opts.Epsilon)
}

// Package exportfile extracts posts from social-media export JSON files
package exportfile

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"polyglot/internal/core/langdetect"
	postsdom "polyglot/internal/services/posts/domain"
)

// Normalizer is a small seam so we don't depend on the concrete normalizer type
type Normalizer interface {
	Normalize(string) string
}

// idNamespace keeps extracted post IDs deterministic across re-runs
var idNamespace = uuid.MustParse("7a3c9b2e-1f4d-4d6a-8b5c-2e9f0a1d3c47")

// FromRaw converts one raw record into a persistable post.
// Returns false when the record carries no usable text or timestamp
func FromRaw(raw RawPost, sourceFile string, norm Normalizer, det *langdetect.Detector) (postsdom.Post, bool) {
	text := CleanText(raw.Text)
	if text == "" {
		return postsdom.Post{}, false
	}

	createdAt, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return postsdom.Post{}, false
	}

	author := normalizeHandle(raw.ScreenName)

	var normed string
	if norm != nil {
		normed = norm.Normalize(text)
	} else {
		normed = text
	}

	p := postsdom.Post{
		ID:         PostID(sourceFile, author, createdAt, text),
		CreatedAt:  createdAt.UTC(),
		Author:     author,
		AuthorName: strings.TrimSpace(raw.DisplayName),
		SourceFile: sourceFile,
		TextRaw:    text,
		TextNorm:   normed,
		Likes:      parseCount(raw.LikeCount),
		Shares:     parseCount(raw.RetweetCount) + parseCount(raw.QuoteCount),
		Replies:    parseCount(raw.ReplyCount),
		Views:      parseCount(raw.ViewCount),
		IsSpam:     IsLikelySpam(text),
	}

	// Stamp an initial label; the detect job can re-label later with a newer version
	if det != nil && normed != "" {
		lang := string(det.Detect(normed).Language)
		p.Lang = &lang
	}
	return p, true
}

// FromExport extracts every usable post from one decoded export file
func FromExport(raws []RawPost, sourceFile string, norm Normalizer, det *langdetect.Detector) []postsdom.Post {
	out := make([]postsdom.Post, 0, len(raws))
	for _, r := range raws {
		if p, ok := FromRaw(r, sourceFile, norm, det); ok {
			out = append(out, p)
		}
	}
	return out
}

// PostID derives a stable uuid from the record's identity fields
func PostID(sourceFile, author string, createdAt time.Time, text string) string {
	key := strings.Join([]string{
		sourceFile, author, createdAt.UTC().Format(time.RFC3339), text,
	}, "|")
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// normalizeHandle lowercases and strips the @ prefix
func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "@"))
}

// Package repo provides the labels repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"polyglot/internal/modkit/repokit"
	"polyglot/internal/services/labels/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the labels repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.LabelWrite) error
	ListSamples(
		ctx context.Context,
		w domain.Window,
		f domain.Filters,
		after domain.AfterKey,
		limit int,
	) ([]domain.Sample, domain.AfterKey, error)
	AggByLanguage(ctx context.Context, w domain.Window, f domain.Filters) ([]domain.AggByLanguageRow, error)
}

// WriteBatch implements Storage
func (s *pg) WriteBatch(ctx context.Context, xs []domain.LabelWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO post_labels
		(post_id, created_at, language, primary_lang, secondary_lang, is_mixed,
		confidence, scripts, detector_version) VALUES `)

	args := make([]any, 0, len(xs)*9)
	for i, l := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*9 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)

		var secondary *string
		if l.Secondary != "" {
			secondary = &l.Secondary
		}
		args = append(args,
			l.PostID, l.CreatedAt, l.Language, l.Primary, secondary,
			l.IsMixed, l.Confidence, l.Scripts, l.DetectorVersion,
		)
	}
	// Idempotent per detector version; re-labeling bumps the version instead
	sb.WriteString(` ON CONFLICT (post_id, detector_version) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

func (s *pg) ListSamples(
	ctx context.Context,
	w domain.Window,
	f domain.Filters,
	after domain.AfterKey,
	limit int,
) ([]domain.Sample, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			l.post_id::text,
			p.created_at,
			p.author,
			COALESCE(p.text_norm, '') AS text_norm,
			l.language,
			l.primary_lang,
			l.secondary_lang,
			l.is_mixed,
			l.confidence,
			l.detector_version
		FROM post_labels l
		JOIN posts p ON p.post_id = l.post_id
		WHERE p.created_at >= ` + arg(w.Since) + ` AND p.created_at < ` + arg(w.Until) + `
	`)
	// Keyset only when AfterKey is set (avoid ""::uuid on first page)
	if after.PostID != "" {
		sb.WriteString(
			"  AND (p.created_at, p.post_id) > (" +
				arg(after.CreatedAt) + ", " +
				arg(after.PostID) + "::uuid)\n",
		)
	}

	if f.Author != "" {
		sb.WriteString("  AND p.author = " + arg(f.Author) + "\n")
	}
	if f.Language != "" {
		sb.WriteString("  AND l.language = " + arg(f.Language) + "\n")
	}
	if f.Mixed != nil {
		sb.WriteString("  AND l.is_mixed = " + arg(*f.Mixed) + "\n")
	}
	if f.Version != nil {
		sb.WriteString("  AND l.detector_version = " + arg(*f.Version) + "\n")
	}
	if f.MinConfidence > 0 {
		sb.WriteString("  AND l.confidence >= " + arg(f.MinConfidence) + "\n")
	}

	sb.WriteString("ORDER BY p.created_at, p.post_id\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Sample, 0, limit)
	var last domain.AfterKey
	for rows.Next() {
		var srow domain.Sample
		if err := rows.Scan(
			&srow.PostID, &srow.CreatedAt, &srow.Author, &srow.TextNorm,
			&srow.Language, &srow.Primary, &srow.Secondary,
			&srow.IsMixed, &srow.Confidence, &srow.DetectorVersion,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, srow)
		last = domain.AfterKey{CreatedAt: srow.CreatedAt, PostID: srow.PostID}
	}
	return out, last, rows.Err()
}

// AggByLanguage implements Storage
func (s *pg) AggByLanguage(
	ctx context.Context,
	w domain.Window,
	f domain.Filters,
) ([]domain.AggByLanguageRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT l.language, COUNT(*) AS posts, AVG(l.confidence) AS avg_confidence, l.detector_version
		FROM post_labels l
		WHERE l.created_at >= ` + arg(w.Since) + ` AND l.created_at < ` + arg(w.Until) + `
	`)
	if f.Language != "" {
		sb.WriteString("  AND l.language = " + arg(f.Language) + "\n")
	}
	if f.Mixed != nil {
		sb.WriteString("  AND l.is_mixed = " + arg(*f.Mixed) + "\n")
	}
	if f.Version != nil {
		sb.WriteString("  AND l.detector_version = " + arg(*f.Version) + "\n")
	}
	sb.WriteString("GROUP BY l.language, l.detector_version ORDER BY posts DESC, l.language ASC")

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AggByLanguageRow
	for rows.Next() {
		var r domain.AggByLanguageRow
		if err := rows.Scan(&r.Language, &r.Posts, &r.AvgConfidence, &r.DetectorVersion); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

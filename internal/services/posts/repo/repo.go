// Package repo provides repository implementations for posts
package repo

import (
	"context"
	"fmt"
	"strings"

	"polyglot/internal/modkit/repokit"
	"polyglot/internal/services/posts/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the posts repository
type Storage interface {
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Post, domain.AfterKey, error)
	InsertBatch(ctx context.Context, xs []domain.Post) error
}

type pg struct{ q repokit.Queryer }

// List implements domain.ReaderPort
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Post, domain.AfterKey, error) {
	// Dynamic WHERE with numbered args
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			p.post_id::text,
			p.created_at,
			p.author,
			p.author_name,
			p.source_file,
			p.text_raw,
			COALESCE(p.text_norm, '') AS text_norm,
			p.lang,
			p.likes,
			p.shares,
			p.replies,
			p.views,
			p.is_spam
		FROM posts p
		WHERE p.created_at >= ` + arg(in.Since) + ` AND p.created_at < ` + arg(in.Until) + `
	`)

	// Keyset only when AfterKey is set (avoid ""::uuid on first page)
	if in.After.ID != "" {
		sb.WriteString("  AND (p.created_at, p.post_id) > (" + arg(in.After.CreatedAt) + ", " + arg(in.After.ID) + "::uuid)\n")
	}

	if in.Author != "" {
		sb.WriteString("  AND p.author = " + arg(in.Author) + "\n")
	}
	if in.SourceFile != "" {
		sb.WriteString("  AND p.source_file = " + arg(in.SourceFile) + "\n")
	}
	if in.Lang != "" {
		sb.WriteString("  AND p.lang = " + arg(in.Lang) + "\n")
	}
	if in.SkipSpam {
		sb.WriteString("  AND NOT p.is_spam\n")
	}

	sb.WriteString("ORDER BY p.created_at, p.post_id\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Post, 0, hardLimit)
	var last domain.AfterKey
	for rows.Next() {
		var r domain.Post
		if err := rows.Scan(
			&r.ID, &r.CreatedAt, &r.Author, &r.AuthorName, &r.SourceFile,
			&r.TextRaw, &r.TextNorm, &r.Lang,
			&r.Likes, &r.Shares, &r.Replies, &r.Views, &r.IsSpam,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, r)
		last = domain.AfterKey{CreatedAt: r.CreatedAt, ID: r.ID}
	}
	return out, last, rows.Err()
}

// InsertBatch implements Storage
func (s *pg) InsertBatch(ctx context.Context, xs []domain.Post) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO posts
		(post_id, created_at, author, author_name, source_file, text_raw, text_norm,
		lang, likes, shares, replies, views, is_spam) VALUES `)

	args := make([]any, 0, len(xs)*13)
	for i, p := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*13 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12)

		args = append(args,
			p.ID, p.CreatedAt, p.Author, p.AuthorName, p.SourceFile,
			p.TextRaw, p.TextNorm, p.Lang,
			p.Likes, p.Shares, p.Replies, p.Views, p.IsSpam,
		)
	}
	// Re-running an export over the same files must not duplicate rows
	sb.WriteString(` ON CONFLICT (post_id) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

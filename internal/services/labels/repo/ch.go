package repo

import (
	"context"
	"strings"
	"time"

	"polyglot/internal/platform/store"
	"polyglot/internal/services/labels/domain"
)

// observationCols matches the lang_observations table ordering
var observationCols = []string{
	"post_id", "created_at", "author", "language",
	"primary_lang", "secondary_lang", "is_mixed",
	"confidence", "detector_version",
}

// CH mirrors label observations into ClickHouse and serves the day series
type CH struct {
	conn store.Clickhouse
}

// NewCH wraps the store ClickHouse seam
func NewCH(conn store.Clickhouse) *CH { return &CH{conn: conn} }

// WriteObservations appends one observation row per label
func (c *CH) WriteObservations(ctx context.Context, xs []domain.LabelWrite) error {
	if c == nil || c.conn == nil || len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, l := range xs {
		rows = append(rows, []any{
			l.PostID, l.CreatedAt, l.Author, l.Language,
			l.Primary, l.Secondary, l.IsMixed,
			l.Confidence, int32(l.DetectorVersion),
		})
	}
	return c.conn.Insert(ctx, "lang_observations", observationCols, rows)
}

// SeriesByDay buckets observations per (day, language)
func (c *CH) SeriesByDay(
	ctx context.Context,
	w domain.Window,
	f domain.Filters,
) ([]domain.SeriesRow, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`
		SELECT toStartOfDay(created_at) AS day, language, count() AS posts
		FROM lang_observations
		WHERE created_at >= ? AND created_at < ?
	`)
	args = append(args, w.Since, w.Until)

	if f.Language != "" {
		sb.WriteString("  AND language = ?\n")
		args = append(args, f.Language)
	}
	if f.Author != "" {
		sb.WriteString("  AND author = ?\n")
		args = append(args, f.Author)
	}
	if f.Version != nil {
		sb.WriteString("  AND detector_version = ?\n")
		args = append(args, int32(*f.Version))
	}
	sb.WriteString("GROUP BY day, language ORDER BY day ASC, language ASC")

	rows, err := c.conn.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SeriesRow
	for rows.Next() {
		var (
			day   time.Time
			lang  string
			posts uint64
		)
		if err := rows.Scan(&day, &lang, &posts); err != nil {
			return nil, err
		}
		out = append(out, domain.SeriesRow{Day: day, Language: lang, Posts: int64(posts)})
	}
	return out, rows.Err()
}

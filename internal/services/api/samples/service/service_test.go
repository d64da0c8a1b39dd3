package service

import (
	"context"
	"testing"
	"time"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/api/samples/domain"
	labelsdom "polyglot/internal/services/labels/domain"
)

type fakeQuery struct {
	gotAfter labelsdom.AfterKey
	gotLimit int
	rows     []labelsdom.Sample
	next     labelsdom.AfterKey
}

func (f *fakeQuery) ListSamples(
	ctx context.Context,
	w labelsdom.Window,
	fl labelsdom.Filters,
	after labelsdom.AfterKey,
	limit int,
) ([]labelsdom.Sample, labelsdom.AfterKey, error) {
	f.gotAfter, f.gotLimit = after, limit
	return f.rows, f.next, nil
}

func (f *fakeQuery) AggByLanguage(ctx context.Context, w labelsdom.Window, fl labelsdom.Filters) ([]labelsdom.AggByLanguageRow, error) {
	return nil, nil
}

func (f *fakeQuery) SeriesByDay(ctx context.Context, w labelsdom.Window, fl labelsdom.Filters) ([]labelsdom.SeriesRow, error) {
	return nil, nil
}

func TestRecentMapsRowsAndCursor(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fq := &fakeQuery{
		rows: []labelsdom.Sample{{
			PostID:          "0c7f3a10-aaaa-bbbb-cccc-000000000001",
			CreatedAt:       ts,
			Author:          "tanaka_jp",
			TextNorm:        "これはテストです",
			Language:        "japanese",
			Primary:         "japanese",
			IsMixed:         false,
			Confidence:      0.93,
			DetectorVersion: 1,
		}},
		next: labelsdom.AfterKey{CreatedAt: ts, PostID: "0c7f3a10-aaaa-bbbb-cccc-000000000001"},
	}
	svc := New(fq)

	out, err := svc.Recent(context.Background(), domain.SamplesInput{
		Start: "2026-03-01", End: "2026-03-02", Limit: 25,
	})
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(out.Samples) != 1 {
		t.Fatalf("samples = %+v", out.Samples)
	}
	s := out.Samples[0]
	if s.Language != "japanese" || s.Text != "これはテストです" || s.CreatedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("sample = %+v", s)
	}
	if out.NextPostID != s.PostID || out.NextCreatedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("cursor = %q / %q", out.NextCreatedAt, out.NextPostID)
	}
	if fq.gotLimit != 25 {
		t.Fatalf("limit = %d", fq.gotLimit)
	}
}

func TestRecentCursorNeedsTimestamp(t *testing.T) {
	svc := New(&fakeQuery{})

	_, err := svc.Recent(context.Background(), domain.SamplesInput{
		Start: "2026-03-01", End: "2026-03-02",
		AfterPostID: "0c7f3a10-aaaa-bbbb-cccc-000000000001",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestRecentPassesCursorThrough(t *testing.T) {
	fq := &fakeQuery{}
	svc := New(fq)

	_, err := svc.Recent(context.Background(), domain.SamplesInput{
		Start: "2026-03-01", End: "2026-03-02",
		AfterCreatedAt: "2026-03-01T10:00:00Z",
		AfterPostID:    "0c7f3a10-aaaa-bbbb-cccc-000000000002",
	})
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if fq.gotAfter.PostID != "0c7f3a10-aaaa-bbbb-cccc-000000000002" {
		t.Fatalf("after = %+v", fq.gotAfter)
	}
	if !fq.gotAfter.CreatedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("after ts = %v", fq.gotAfter.CreatedAt)
	}
}

func TestRecentEmptyPageHasNoCursor(t *testing.T) {
	svc := New(&fakeQuery{})

	out, err := svc.Recent(context.Background(), domain.SamplesInput{
		Start: "2026-03-01", End: "2026-03-02",
	})
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(out.Samples) != 0 || out.NextPostID != "" || out.NextCreatedAt != "" {
		t.Fatalf("out = %+v", out)
	}
}

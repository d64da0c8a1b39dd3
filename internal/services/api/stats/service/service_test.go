package service

import (
	"context"
	"testing"
	"time"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/api/stats/domain"
	labelsdom "polyglot/internal/services/labels/domain"
)

type fakeQuery struct {
	gotWindow  labelsdom.Window
	gotFilters labelsdom.Filters
	aggRows    []labelsdom.AggByLanguageRow
	seriesRows []labelsdom.SeriesRow
}

func (f *fakeQuery) ListSamples(
	ctx context.Context,
	w labelsdom.Window,
	fl labelsdom.Filters,
	after labelsdom.AfterKey,
	limit int,
) ([]labelsdom.Sample, labelsdom.AfterKey, error) {
	return nil, labelsdom.AfterKey{}, nil
}

func (f *fakeQuery) AggByLanguage(ctx context.Context, w labelsdom.Window, fl labelsdom.Filters) ([]labelsdom.AggByLanguageRow, error) {
	f.gotWindow, f.gotFilters = w, fl
	return f.aggRows, nil
}

func (f *fakeQuery) SeriesByDay(ctx context.Context, w labelsdom.Window, fl labelsdom.Filters) ([]labelsdom.SeriesRow, error) {
	f.gotWindow, f.gotFilters = w, fl
	return f.seriesRows, nil
}

func TestLanguagesWindowIsEndInclusive(t *testing.T) {
	fq := &fakeQuery{aggRows: []labelsdom.AggByLanguageRow{
		{Language: "japanese", Posts: 10, AvgConfidence: 0.91, DetectorVersion: 1},
	}}
	svc := New(fq)

	rows, err := svc.Languages(context.Background(), domain.LanguagesInput{
		Range:    domain.TimeRange{Start: "2026-03-01", End: "2026-03-03"},
		Language: "japanese",
	})
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if len(rows) != 1 || rows[0].Language != "japanese" || rows[0].Posts != 10 {
		t.Fatalf("rows = %+v", rows)
	}

	wantSince := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	wantUntil := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) // end day + 1
	if !fq.gotWindow.Since.Equal(wantSince) || !fq.gotWindow.Until.Equal(wantUntil) {
		t.Fatalf("window = %+v", fq.gotWindow)
	}
	if fq.gotFilters.Language != "japanese" {
		t.Fatalf("filters = %+v", fq.gotFilters)
	}
}

func TestLanguagesRejectsBadRange(t *testing.T) {
	svc := New(&fakeQuery{})

	cases := []domain.TimeRange{
		{Start: "yesterday", End: "2026-03-03"},
		{Start: "2026-03-01", End: "tomorrow"},
		{Start: "2026-03-03", End: "2026-03-01"},
	}
	for _, tr := range cases {
		_, err := svc.Languages(context.Background(), domain.LanguagesInput{Range: tr})
		if err == nil {
			t.Fatalf("range %+v must be rejected", tr)
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("range %+v: wrong error %v", tr, err)
		}
	}
}

func TestSeriesFormatsDays(t *testing.T) {
	fq := &fakeQuery{seriesRows: []labelsdom.SeriesRow{
		{Day: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Language: "english", Posts: 4},
		{Day: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Language: "japanese", Posts: 7},
	}}
	svc := New(fq)

	rows, err := svc.Series(context.Background(), domain.SeriesInput{
		Range: domain.TimeRange{Start: "2026-03-01", End: "2026-03-02"},
	})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(rows) != 2 || rows[0].Day != "2026-03-01" || rows[1].Day != "2026-03-02" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[1].Language != "japanese" || rows[1].Posts != 7 {
		t.Fatalf("rows = %+v", rows)
	}
}

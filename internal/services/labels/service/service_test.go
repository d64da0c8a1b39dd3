package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"polyglot/internal/modkit/repokit"
	"polyglot/internal/platform/store"
	dom "polyglot/internal/services/labels/domain"
	"polyglot/internal/services/labels/repo"
)

type memStorage struct {
	written  []dom.LabelWrite
	gotLimit int
}

func (m *memStorage) WriteBatch(_ context.Context, xs []dom.LabelWrite) error {
	m.written = append(m.written, xs...)
	return nil
}

func (m *memStorage) ListSamples(
	_ context.Context, _ dom.Window, _ dom.Filters, _ dom.AfterKey, limit int,
) ([]dom.Sample, dom.AfterKey, error) {
	m.gotLimit = limit
	return nil, dom.AfterKey{}, nil
}

func (m *memStorage) AggByLanguage(context.Context, dom.Window, dom.Filters) ([]dom.AggByLanguageRow, error) {
	return []dom.AggByLanguageRow{{Language: "japanese", Posts: 2}}, nil
}

type passTx struct{}

func (passTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (passTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (passTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (passTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(passTx{}) }

func fixedBinder(st *memStorage) repokit.Binder[repo.Storage] {
	return repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
}

type fakeCH struct {
	table string
	rows  int
	fail  bool
}

func (f *fakeCH) Insert(_ context.Context, table string, _ []string, rows [][]any) error {
	if f.fail {
		return errors.New("ch down")
	}
	f.table = table
	f.rows = len(rows)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                              { return nil }

func sampleWrites() []dom.LabelWrite {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []dom.LabelWrite{
		{PostID: "a", CreatedAt: ts, Language: "japanese", Primary: "japanese", Confidence: 0.9, DetectorVersion: 1},
		{PostID: "b", CreatedAt: ts, Language: "mixed", Primary: "japanese", Secondary: "english", IsMixed: true, Confidence: 0.6, DetectorVersion: 1},
	}
}

func TestWriteBatchMirrorsObservations(t *testing.T) {
	st := &memStorage{}
	ch := &fakeCH{}
	svc := New(passTx{}, fixedBinder(st), repo.NewCH(ch), Config{})

	if err := svc.WriteBatch(context.Background(), sampleWrites()); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if len(st.written) != 2 {
		t.Fatalf("pg rows = %d", len(st.written))
	}
	if ch.table != "lang_observations" || ch.rows != 2 {
		t.Fatalf("ch table=%q rows=%d", ch.table, ch.rows)
	}
}

func TestWriteBatchSurvivesMirrorFailure(t *testing.T) {
	st := &memStorage{}
	svc := New(passTx{}, fixedBinder(st), repo.NewCH(&fakeCH{fail: true}), Config{})

	if err := svc.WriteBatch(context.Background(), sampleWrites()); err != nil {
		t.Fatalf("mirror failure must not fail the batch: %v", err)
	}
	if len(st.written) != 2 {
		t.Fatalf("pg rows = %d", len(st.written))
	}
}

func TestWriteBatchNoObservationStore(t *testing.T) {
	st := &memStorage{}
	svc := New(passTx{}, fixedBinder(st), nil, Config{})

	if err := svc.WriteBatch(context.Background(), sampleWrites()); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
}

func TestListSamplesClampsLimit(t *testing.T) {
	st := &memStorage{}
	svc := New(passTx{}, fixedBinder(st), nil, Config{HardLimit: 50})

	if _, _, err := svc.ListSamples(context.Background(), dom.Window{}, dom.Filters{}, dom.AfterKey{}, 1000); err != nil {
		t.Fatalf("ListSamples: %v", err)
	}
	if st.gotLimit != 50 {
		t.Fatalf("limit = %d, want 50", st.gotLimit)
	}
}

func TestSeriesByDayRequiresObservationStore(t *testing.T) {
	svc := New(passTx{}, fixedBinder(&memStorage{}), nil, Config{})
	if _, err := svc.SeriesByDay(context.Background(), dom.Window{}, dom.Filters{}); err == nil {
		t.Fatal("expected error without observation store")
	}
}

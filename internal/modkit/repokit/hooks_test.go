package repokit

import (
	"context"
	"errors"
	"testing"
)

type memTx struct {
	calls []string
}

type noopQuerier struct{}

func (noopQuerier) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (noopQuerier) Query(context.Context, string, ...any) (Rows, error)      { return nil, nil }
func (noopQuerier) QueryRow(context.Context, string, ...any) Row             { return nil }

func (m *memTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	m.calls = append(m.calls, "exec")
	return nil, nil
}

func (m *memTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (m *memTx) QueryRow(context.Context, string, ...any) Row        { return nil }

func (m *memTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	m.calls = append(m.calls, "tx")
	return fn(noopQuerier{})
}

type recQuerier struct{ sqls []string }

func (r *recQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	r.sqls = append(r.sqls, sql)
	return nil, nil
}
func (r *recQuerier) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (r *recQuerier) QueryRow(context.Context, string, ...any) Row        { return nil }

// qTx hands fn a caller-supplied querier so hooks can be observed
type qTx struct{ q Queryer }

func (t qTx) Exec(ctx context.Context, sql string, a ...any) (CommandTag, error) {
	return t.q.Exec(ctx, sql, a...)
}
func (t qTx) Query(ctx context.Context, sql string, a ...any) (Rows, error) {
	return t.q.Query(ctx, sql, a...)
}
func (t qTx) QueryRow(ctx context.Context, sql string, a ...any) Row {
	return t.q.QueryRow(ctx, sql, a...)
}
func (t qTx) Tx(_ context.Context, fn func(q Queryer) error) error { return fn(t.q) }

func TestExecHookRunsStatementFirst(t *testing.T) {
	q := &recQuerier{}
	tx := WithBeginHooks(qTx{q: q}, ExecHook("SET LOCAL statement_timeout = '5s'"))

	err := tx.Tx(context.Background(), func(qq Queryer) error {
		_, err := qq.Exec(context.Background(), "INSERT INTO t VALUES (1)")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if len(q.sqls) != 2 || q.sqls[0] != "SET LOCAL statement_timeout = '5s'" {
		t.Fatalf("sqls = %v", q.sqls)
	}
}

func TestWithBeginHooksOrder(t *testing.T) {
	inner := &memTx{}
	var order []string
	tx := WithBeginHooks(inner,
		func(context.Context, Queryer) error { order = append(order, "h1"); return nil },
		func(context.Context, Queryer) error { order = append(order, "h2"); return nil },
	)

	err := tx.Tx(context.Background(), func(Queryer) error {
		order = append(order, "fn")
		return nil
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if len(order) != 3 || order[0] != "h1" || order[1] != "h2" || order[2] != "fn" {
		t.Fatalf("order = %v", order)
	}
}

func TestWithBeginHooksAbortsOnError(t *testing.T) {
	inner := &memTx{}
	boom := errors.New("boom")
	tx := WithBeginHooks(inner, func(context.Context, Queryer) error { return boom })

	ran := false
	err := tx.Tx(context.Background(), func(Queryer) error { ran = true; return nil })
	if !errors.Is(err, boom) || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
}

func TestMustBind(t *testing.T) {
	b := BindFunc[string](func(q Queryer) string { return "bound" })
	if got := MustBind[string](b, noopQuerier{}); got != "bound" {
		t.Fatalf("got = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil queryer")
		}
	}()
	MustBind[string](b, nil)
}

package repokit

import "context"

// BeginHook runs at the start of a transaction, on the tx-bound Queryer,
// before the caller's function
type BeginHook func(ctx context.Context, q Queryer) error

// ExecHook returns a BeginHook that executes one statement at tx start.
// Meant for per-tx session tuning (SET LOCAL ...)
func ExecHook(sql string, args ...any) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, sql, args...)
		return err
	}
}

// WithBeginHooks decorates a TxRunner so every Tx runs hooks first, inside
// the same transaction. A hook error aborts the tx before fn runs
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return txWithHooks{inner: inner, hooks: hooks}
}

type txWithHooks struct {
	inner TxRunner
	hooks []BeginHook
}

func (h txWithHooks) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// non-tx calls pass straight through to the inner runner
func (h txWithHooks) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h txWithHooks) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h txWithHooks) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}

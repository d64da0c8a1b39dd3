package errors

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg says no"}
}

func TestDBErrorCodeMapping(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeDB},
		{"57P03", ErrorCodeUnavailable},
		{"XX000", ErrorCodeDB},
	}
	for _, tc := range cases {
		code, ok := DBErrorCode(pgErr(tc.sqlstate))
		if !ok || code != tc.want {
			t.Fatalf("sqlstate %s: got (%d,%v) want %d", tc.sqlstate, code, ok, tc.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("not pg")); ok {
		t.Fatalf("foreign error must not map")
	}
}

func TestFromPostgresWrapsWithMappedCode(t *testing.T) {
	err := FromPostgres(pgErr("23505"), "insert post")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("CodeOf = %d", CodeOf(err))
	}
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestAttachFieldFromPg(t *testing.T) {
	cases := []struct {
		name string
		e    *pgconn.PgError
		want string
	}{
		{"unique key suffix", &pgconn.PgError{Code: "23505", ConstraintName: "posts_author_key"}, "author"},
		{"index suffix", &pgconn.PgError{Code: "23505", ConstraintName: "posts_source_file_idx"}, "file"},
		{"foreign key suffix", &pgconn.PgError{Code: "23503", ConstraintName: "post_labels_post_id_fkey"}, "id"},
		{"column name wins", &pgconn.PgError{Code: "23502", ColumnName: "created_at", ConstraintName: "posts_author_key"}, "created_at"},
	}
	for _, tc := range cases {
		err := AttachFieldFromPg(FromPostgres(tc.e, "insert"))
		pe, ok := As(err)
		if !ok || pe.Field() != tc.want {
			t.Fatalf("%s: field = %q, want %q", tc.name, pe.Field(), tc.want)
		}
	}

	plain := stderrs.New("not pg")
	if got := AttachFieldFromPg(plain); got != plain {
		t.Fatalf("foreign error must pass through unchanged")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(pgErr("40001")) {
		t.Fatalf("serialization failure must be retryable")
	}
	if !IsRetryable(pgErr("40P01")) {
		t.Fatalf("deadlock must be retryable")
	}
	if IsRetryable(pgErr("23505")) {
		t.Fatalf("duplicate key must not be retryable")
	}
	if IsRetryable(context.Canceled) {
		t.Fatalf("local cancellation must not be retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("commit rollback text must be retryable")
	}
	if IsRetryable(nil) {
		t.Fatalf("nil is not retryable")
	}
}

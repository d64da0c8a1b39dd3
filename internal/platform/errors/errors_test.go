package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "insert posts")
	if got := err.Error(); got != "insert posts: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause not reachable via errors.Is")
	}
	if Root(err) != cause {
		t.Fatalf("Root did not reach the cause")
	}
}

func TestCodeOfAndHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
		http int
	}{
		{NotFoundf("no post"), ErrorCodeNotFound, http.StatusNotFound},
		{InvalidArgf("bad limit"), ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{DuplicateKeyf("dup"), ErrorCodeDuplicateKey, http.StatusConflict},
		{JSONErrf("parse"), ErrorCodeJSON, http.StatusBadRequest},
		{Unavailablef("later"), ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{DBf("pg down"), ErrorCodeDB, http.StatusInternalServerError},
		{stderrs.New("foreign"), ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := CodeOf(tc.err); got != tc.code {
			t.Fatalf("%v: CodeOf = %d want %d", tc.err, got, tc.code)
		}
		if got := HTTPStatus(tc.err); got != tc.http {
			t.Fatalf("%v: HTTPStatus = %d want %d", tc.err, got, tc.http)
		}
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Newf(ErrorCodeValidation, "text required"), "text"))
	if w.Code != ErrorCodeValidation || w.Field != "text" || w.Message != "text required" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
}

func TestWithOpAndFieldAreCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeNotFound, "gone")
	tagged := WithOp(base, "posts.Get")
	e1, _ := As(base)
	e2, _ := As(tagged)
	if e1.Op() != "" || e2.Op() != "posts.Get" {
		t.Fatalf("ops: %q / %q", e1.Op(), e2.Op())
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign {
		t.Fatalf("foreign error must pass through unchanged")
	}
}

func TestHTTPBundle(t *testing.T) {
	status, w := HTTP(NotFoundf("nope"))
	if status != http.StatusNotFound || w.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP = %d %+v", status, w)
	}
	status, w = HTTP(nil)
	if status != http.StatusOK || w.Message != "" {
		t.Fatalf("HTTP(nil) = %d %+v", status, w)
	}
}

package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/net/http/bind"
)

type detectReq struct {
	Text    string `json:"text" validate:"required,max=100"`
	Verbose bool   `json:"verbose"`
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(body))
}

func TestParseJSONValid(t *testing.T) {
	got, err := bind.ParseJSON[detectReq](postJSON(`{"text":"hello","verbose":true}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Text != "hello" || !got.Verbose {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := bind.ParseJSON[detectReq](postJSON(`{"text":`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := bind.ParseJSON[detectReq](postJSON(`{"text":"hi","nope":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSONEmptyBodyPost(t *testing.T) {
	_, err := bind.ParseJSON[detectReq](postJSON(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSONEmptyBodyGetTolerated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/detect", strings.NewReader(""))
	if _, err := bind.ParseJSON[detectReq](req); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSONValidationUsesJSONTag(t *testing.T) {
	_, err := bind.ParseJSON[detectReq](postJSON(`{"verbose":false}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}
	pe, ok := perr.As(err)
	if !ok || pe.Field() != "text" {
		t.Fatalf("field = %v", err)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	svc := bind.Get()
	err := svc.Validator.Struct(detectReq{Text: strings.Repeat("x", 200)})
	field, msg := bind.ValidationFieldAndMessage(err)
	if field != "text" || !strings.Contains(msg, "at most") {
		t.Fatalf("field=%q msg=%q", field, msg)
	}
}

package net

import (
	"net/http"

	perr "polyglot/internal/platform/errors"
)

// HTTPStatus maps a project error to an http status; nil maps to 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

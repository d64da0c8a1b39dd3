// Package http provides http transport for samples
package http

import (
	stdhttp "net/http"

	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/services/api/samples/domain"
	svc "polyglot/internal/services/api/samples/service"
)

// Register mounts samples endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SamplesInput](r, "/", h.recent)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /samples Samples samplesRecent
// @Summary Labeled post samples, keyset paged
// @Tags Samples
// @Accept json
// @Produce json
// @Param payload body domain.SamplesInput true "Query"
// @Success 200 {object} domain.SamplesOut "ok"
// @Router /samples [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.SamplesInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}

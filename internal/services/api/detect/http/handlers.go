// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/services/api/detect/domain"
	svc "polyglot/internal/services/api/detect/service"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.detectBatch)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /detect Detect detectOne
// @Summary Label one text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectionOut "ok"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /detect/batch Detect detectBatch
// @Summary Label up to 100 texts in one call
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Texts"
// @Success 200 {object} domain.BatchOut "ok"
// @Router /detect/batch [post]
func (h *handlers) detectBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.DetectBatch(r.Context(), in)
}

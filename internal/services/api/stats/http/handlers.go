// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/services/api/stats/domain"
	svc "polyglot/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// buckets by language over post_labels
	httpkit.PostJSON[domain.LanguagesInput](r, "/languages", h.languages)

	// day series over the observation mirror
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/languages Stats statsLanguages
// @Summary Labeled posts per language
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.LanguagesInput true "Query"
// @Success 200 {array} domain.LanguagesRow "ok"
// @Router /stats/languages [post]
func (h *handlers) languages(r *stdhttp.Request, in domain.LanguagesInput) (any, error) {
	return h.svc.Languages(r.Context(), in)
}

// swagger:route POST /stats/series Stats statsSeries
// @Summary Observations per day and language
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {array} domain.SeriesRow "ok"
// @Router /stats/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

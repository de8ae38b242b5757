package reconciliation

import (
	"marketplace/infras/otel"
	"marketplace/internal/domains/reconciliation/service"
	"marketplace/shared/constant"
	"marketplace/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reconciliation
	otel    otel.Otel
}

func New(service service.Reconciliation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/internal/reconciliation", func(routerGroup chi.Router) {
		routerGroup.Post("/{sweep}", handler.RunSweep)
	})
}

// RunSweep runs one reconciliation sweep, or all of them, and reports what moved.
// @Summary Run a reconciliation sweep
// @Tags Internal
// @Produce json
// @Param sweep path string true "acceptance, payment, completion or all"
// @Success 200 {object} response.Data[map[string]dto.Report]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/internal/reconciliation/{sweep} [post]
// @Security ApiKeyAuth
func (handler *Handler) RunSweep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunSweep")
	defer scope.End()

	sweep := chi.URLParam(r, constant.RequestParamSweep)

	reports, err := handler.service.Run(ctx, sweep)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sweep", sweep).Msg("failed to run reconciliation sweep")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reports)
}
